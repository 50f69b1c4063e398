package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/armonia-apps/msa-client-api/internal/gateway"
	"github.com/armonia-apps/msa-client-api/internal/models"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
)

type userAPI interface {
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, req gateway.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req gateway.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	SetStudentDetail(ctx context.Context, id string, req gateway.StudentDetailRequest) (*models.UserDetail, error)
	SetTeacherDetail(ctx context.Context, id string, req gateway.TeacherDetailRequest) (*models.UserDetail, error)
	CheckDuplicates(ctx context.Context, email, givenName, familyName, birthDate string) (*models.DuplicateCheck, error)
	ListMyStudents(ctx context.Context) ([]models.User, error)
}

// CreateUserRequest is the payload accepted from the UI for creating users.
type CreateUserRequest struct {
	Role       models.UserRole `json:"ruolo" validate:"required,oneof=amministratore insegnante allievo"`
	GivenName  string          `json:"nome" validate:"required"`
	FamilyName string          `json:"cognome" validate:"required"`
	Email      string          `json:"email" validate:"required,email"`
	Password   string          `json:"password" validate:"required,min=6"`
	AdminNotes string          `json:"note_admin"`
}

// UpdateUserRequest carries the user attributes the UI may change. Nil
// fields are left untouched by the backend.
type UpdateUserRequest struct {
	GivenName  *string          `json:"nome,omitempty"`
	FamilyName *string          `json:"cognome,omitempty"`
	Email      *string          `json:"email,omitempty" validate:"omitempty,email"`
	Role       *models.UserRole `json:"ruolo,omitempty" validate:"omitempty,oneof=amministratore insegnante allievo"`
	Active     *bool            `json:"attivo,omitempty"`
	Password   *string          `json:"password,omitempty" validate:"omitempty,min=6"`
	AdminNotes *string          `json:"note_admin,omitempty"`
}

// StudentDetailRequest updates the student-specific attributes of a user.
type StudentDetailRequest struct {
	Phone      string `json:"telefono"`
	BirthDate  string `json:"data_nascita" validate:"omitempty,datetime=2006-01-02"`
	MainCourse string `json:"corso_principale"`
	Notes      string `json:"note"`
}

// TeacherDetailRequest updates the teacher-specific attributes of a user.
type TeacherDetailRequest struct {
	Specialization string   `json:"specializzazione"`
	HourlyRate     *float64 `json:"compenso_orario" validate:"omitempty,gte=0"`
	Notes          string   `json:"note"`
}

// UserService handles user management on behalf of the administrator, plus
// the teacher roster lookup. The backend remains the source of truth; this
// layer validates payloads before any network round trip.
type UserService struct {
	api       userAPI
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService creates an instance of UserService.
func NewUserService(api userAPI, validate *validator.Validate, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &UserService{api: api, validator: validate, logger: logger}
}

// List returns users matching the filter.
func (s *UserService) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	return s.api.ListUsers(ctx, filter)
}

// Get returns a user by ID.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.api.GetUser(ctx, id)
}

// Create validates the payload, probes the backend for duplicates and then
// creates the user record.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid create user payload")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if dup, err := s.api.CheckDuplicates(ctx, email, req.GivenName, req.FamilyName, ""); err == nil && dup.Exists {
		message := dup.Message
		if message == "" {
			message = "a matching user already exists"
		}
		return nil, appErrors.Clone(appErrors.ErrConflict, message)
	}

	user, err := s.api.CreateUser(ctx, gateway.CreateUserRequest{
		Role:       req.Role,
		GivenName:  req.GivenName,
		FamilyName: req.FamilyName,
		Email:      email,
		Password:   req.Password,
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", zap.String("id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

// Update modifies user attributes and returns the backend-reconciled record.
func (s *UserService) Update(ctx context.Context, id string, req UpdateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid update user payload")
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		req.Email = &email
	}

	return s.api.UpdateUser(ctx, id, gateway.UpdateUserRequest{
		GivenName:  req.GivenName,
		FamilyName: req.FamilyName,
		Email:      req.Email,
		Role:       req.Role,
		Active:     req.Active,
		Password:   req.Password,
		AdminNotes: req.AdminNotes,
	})
}

// Delete removes a user record.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.api.DeleteUser(ctx, id)
}

// SetStudentDetail attaches or updates the student detail for a user.
func (s *UserService) SetStudentDetail(ctx context.Context, id string, req StudentDetailRequest) (*models.UserDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student detail payload")
	}
	return s.api.SetStudentDetail(ctx, id, gateway.StudentDetailRequest{
		Phone:      req.Phone,
		BirthDate:  req.BirthDate,
		MainCourse: req.MainCourse,
		Notes:      req.Notes,
	})
}

// SetTeacherDetail attaches or updates the teacher detail for a user.
func (s *UserService) SetTeacherDetail(ctx context.Context, id string, req TeacherDetailRequest) (*models.UserDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher detail payload")
	}
	return s.api.SetTeacherDetail(ctx, id, gateway.TeacherDetailRequest{
		Specialization: req.Specialization,
		HourlyRate:     req.HourlyRate,
		Notes:          req.Notes,
	})
}

// Roster returns the students visible to the calling teacher. The backend
// derives the scope from the session token.
func (s *UserService) Roster(ctx context.Context) ([]models.User, error) {
	return s.api.ListMyStudents(ctx)
}
