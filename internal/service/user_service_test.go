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

type mockUserAPI struct {
	listUsers    []models.User
	listErr      error
	created      *gateway.CreateUserRequest
	updated      *gateway.UpdateUserRequest
	deletedID    string
	duplicate    *models.DuplicateCheck
	duplicateErr error
	roster       []models.User
}

func (m *mockUserAPI) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	return m.listUsers, m.listErr
}

func (m *mockUserAPI) GetUser(ctx context.Context, id string) (*models.User, error) {
	for _, u := range m.listUsers {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
}

func (m *mockUserAPI) CreateUser(ctx context.Context, req gateway.CreateUserRequest) (*models.User, error) {
	m.created = &req
	return &models.User{ID: "new", Role: req.Role, Email: req.Email, Active: true}, nil
}

func (m *mockUserAPI) UpdateUser(ctx context.Context, id string, req gateway.UpdateUserRequest) (*models.User, error) {
	m.updated = &req
	return &models.User{ID: id}, nil
}

func (m *mockUserAPI) DeleteUser(ctx context.Context, id string) error {
	m.deletedID = id
	return nil
}

func (m *mockUserAPI) SetStudentDetail(ctx context.Context, id string, req gateway.StudentDetailRequest) (*models.UserDetail, error) {
	return &models.UserDetail{UserID: id, Phone: req.Phone}, nil
}

func (m *mockUserAPI) SetTeacherDetail(ctx context.Context, id string, req gateway.TeacherDetailRequest) (*models.UserDetail, error) {
	return &models.UserDetail{UserID: id, Specialization: req.Specialization}, nil
}

func (m *mockUserAPI) CheckDuplicates(ctx context.Context, email, givenName, familyName, birthDate string) (*models.DuplicateCheck, error) {
	if m.duplicateErr != nil {
		return nil, m.duplicateErr
	}
	if m.duplicate != nil {
		return m.duplicate, nil
	}
	return &models.DuplicateCheck{}, nil
}

func (m *mockUserAPI) ListMyStudents(ctx context.Context) ([]models.User, error) {
	return m.roster, nil
}

func validCreateUser() CreateUserRequest {
	return CreateUserRequest{
		Role:       models.RoleStudent,
		GivenName:  "Luca",
		FamilyName: "Bianchi",
		Email:      "Luca.Bianchi@Example.com",
		Password:   "secret1",
	}
}

func TestUserServiceCreateNormalisesEmail(t *testing.T) {
	api := &mockUserAPI{}
	svc := NewUserService(api, validator.New(), zap.NewNop())

	user, err := svc.Create(context.Background(), validCreateUser())
	require.NoError(t, err)
	assert.Equal(t, "luca.bianchi@example.com", user.Email)
	assert.Equal(t, "luca.bianchi@example.com", api.created.Email)
}

func TestUserServiceCreateRejectsInvalidPayload(t *testing.T) {
	api := &mockUserAPI{}
	svc := NewUserService(api, validator.New(), zap.NewNop())

	req := validCreateUser()
	req.Email = "not-an-email"
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
	assert.Nil(t, api.created, "no backend call on local validation failure")
}

func TestUserServiceCreateStopsOnDuplicate(t *testing.T) {
	api := &mockUserAPI{duplicate: &models.DuplicateCheck{Exists: true, Message: "utente esistente"}}
	svc := NewUserService(api, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), validCreateUser())
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrConflict))
	assert.Contains(t, appErrors.FromError(err).Message, "utente esistente")
	assert.Nil(t, api.created)
}

func TestUserServiceCreateIgnoresDuplicateProbeFailure(t *testing.T) {
	api := &mockUserAPI{duplicateErr: appErrors.Clone(appErrors.ErrBackend, "probe down")}
	svc := NewUserService(api, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), validCreateUser())
	require.NoError(t, err)
	require.NotNil(t, api.created)
}

func TestUserServiceUpdateLowercasesEmail(t *testing.T) {
	api := &mockUserAPI{}
	svc := NewUserService(api, validator.New(), zap.NewNop())

	email := "NEW@Example.com"
	_, err := svc.Update(context.Background(), "u1", UpdateUserRequest{Email: &email})
	require.NoError(t, err)
	require.NotNil(t, api.updated.Email)
	assert.Equal(t, "new@example.com", *api.updated.Email)
}

func TestUserServiceRoster(t *testing.T) {
	api := &mockUserAPI{roster: []models.User{{ID: "s1"}, {ID: "s2"}}}
	svc := NewUserService(api, validator.New(), zap.NewNop())

	students, err := svc.Roster(context.Background())
	require.NoError(t, err)
	assert.Len(t, students, 2)
}
