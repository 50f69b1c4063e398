package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/armonia-apps/msa-client-api/internal/gateway"
	"github.com/armonia-apps/msa-client-api/internal/models"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
)

type mockAssignmentAPI struct {
	lastFilter models.AssignmentFilter
	updated    *gateway.UpdateAssignmentRequest
	created    *gateway.CreateAssignmentRequest
}

func (m *mockAssignmentAPI) ListAssignments(ctx context.Context, filter models.AssignmentFilter) ([]models.Assignment, error) {
	m.lastFilter = filter
	return nil, nil
}

func (m *mockAssignmentAPI) CreateAssignment(ctx context.Context, req gateway.CreateAssignmentRequest) (*models.Assignment, error) {
	m.created = &req
	return &models.Assignment{ID: "c1", StudentID: req.StudentID, Title: req.Title}, nil
}

func (m *mockAssignmentAPI) UpdateAssignment(ctx context.Context, id string, req gateway.UpdateAssignmentRequest) (*models.Assignment, error) {
	m.updated = &req
	completed := false
	if req.Completed != nil {
		completed = *req.Completed
	}
	return &models.Assignment{ID: id, Completed: completed}, nil
}

func (m *mockAssignmentAPI) DeleteAssignment(ctx context.Context, id string) error {
	return nil
}

func TestAssignmentListPinsStudent(t *testing.T) {
	api := &mockAssignmentAPI{}
	svc := NewAssignmentService(api, validator.New(), zap.NewNop())

	_, err := svc.List(context.Background(), &models.User{ID: "s1", Role: models.RoleStudent}, models.AssignmentFilter{})
	require.NoError(t, err)
	assert.Equal(t, "s1", api.lastFilter.StudentID)
}

func TestAssignmentMarkCompletedSendsOnlyFlag(t *testing.T) {
	api := &mockAssignmentAPI{}
	svc := NewAssignmentService(api, validator.New(), zap.NewNop())

	rec, err := svc.MarkCompleted(context.Background(), "c1", true)
	require.NoError(t, err)
	assert.True(t, rec.Completed)
	require.NotNil(t, api.updated.Completed)
	assert.Nil(t, api.updated.Title)
	assert.Nil(t, api.updated.Description)
	assert.Nil(t, api.updated.DueDate)
}

func TestAssignmentCreateRequiresDueDate(t *testing.T) {
	api := &mockAssignmentAPI{}
	svc := NewAssignmentService(api, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateAssignmentRequest{
		StudentID:   "s1",
		Title:       "Scales",
		Description: "C major, two octaves",
		DueDate:     "next week",
	})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
	assert.Nil(t, api.created)
}
