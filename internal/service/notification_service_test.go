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

type mockNotificationAPI struct {
	lastFilter models.NotificationFilter
	created    *gateway.CreateNotificationRequest
}

func (m *mockNotificationAPI) ListNotifications(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, error) {
	m.lastFilter = filter
	return nil, nil
}

func (m *mockNotificationAPI) CreateNotification(ctx context.Context, req gateway.CreateNotificationRequest) (*models.Notification, error) {
	m.created = &req
	return &models.Notification{ID: "n1", Title: req.Title}, nil
}

func (m *mockNotificationAPI) UpdateNotification(ctx context.Context, id string, req gateway.UpdateNotificationRequest) (*models.Notification, error) {
	return &models.Notification{ID: id}, nil
}

func (m *mockNotificationAPI) DeleteNotification(ctx context.Context, id string) error {
	return nil
}

func TestNotificationListForcesActiveForNonAdmins(t *testing.T) {
	api := &mockNotificationAPI{}
	svc := NewNotificationService(api, validator.New(), zap.NewNop())

	_, err := svc.List(context.Background(), &models.User{ID: "s1", Role: models.RoleStudent}, models.NotificationFilter{ActiveOnly: false})
	require.NoError(t, err)
	assert.True(t, api.lastFilter.ActiveOnly)

	_, err = svc.List(context.Background(), &models.User{ID: "a1", Role: models.RoleAdmin}, models.NotificationFilter{ActiveOnly: false})
	require.NoError(t, err)
	assert.False(t, api.lastFilter.ActiveOnly, "admin may inspect inactive notifications")
}

func TestNotificationCreateTargetedNeedsRecipients(t *testing.T) {
	api := &mockNotificationAPI{}
	svc := NewNotificationService(api, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateNotificationRequest{
		Title:         "Saggio di fine anno",
		Message:       "Sabato ore 18",
		RecipientType: "singoli",
	})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
	assert.Nil(t, api.created)

	_, err = svc.Create(context.Background(), CreateNotificationRequest{
		Title:         "Saggio di fine anno",
		Message:       "Sabato ore 18",
		RecipientType: "tutti",
	})
	require.NoError(t, err)
	require.NotNil(t, api.created)
}
