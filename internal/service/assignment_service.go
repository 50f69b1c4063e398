package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/armonia-apps/msa-client-api/internal/gateway"
	"github.com/armonia-apps/msa-client-api/internal/models"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
)

type assignmentAPI interface {
	ListAssignments(ctx context.Context, filter models.AssignmentFilter) ([]models.Assignment, error)
	CreateAssignment(ctx context.Context, req gateway.CreateAssignmentRequest) (*models.Assignment, error)
	UpdateAssignment(ctx context.Context, id string, req gateway.UpdateAssignmentRequest) (*models.Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error
}

// CreateAssignmentRequest is the payload for assigning homework.
type CreateAssignmentRequest struct {
	StudentID   string `json:"allievo_id" validate:"required"`
	Title       string `json:"titolo" validate:"required"`
	Description string `json:"descrizione" validate:"required"`
	DueDate     string `json:"data_scadenza" validate:"required,datetime=2006-01-02"`
}

// UpdateAssignmentRequest carries the mutable assignment attributes.
type UpdateAssignmentRequest struct {
	Title       *string `json:"titolo,omitempty"`
	Description *string `json:"descrizione,omitempty"`
	DueDate     *string `json:"data_scadenza,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Completed   *bool   `json:"completato,omitempty"`
}

// AssignmentService manages homework. Students only ever see their own
// assignments and may only flip the completed flag; everything else goes
// through the teacher/admin update path.
type AssignmentService struct {
	api       assignmentAPI
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAssignmentService creates an instance of AssignmentService.
func NewAssignmentService(api assignmentAPI, validate *validator.Validate, logger *zap.Logger) *AssignmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AssignmentService{api: api, validator: validate, logger: logger}
}

// List returns assignments matching the filter, scoped to the actor.
func (s *AssignmentService) List(ctx context.Context, actor *models.User, filter models.AssignmentFilter) ([]models.Assignment, error) {
	if actor != nil && actor.Role == models.RoleStudent {
		filter.StudentID = actor.ID
	}
	return s.api.ListAssignments(ctx, filter)
}

// Create assigns new homework to a student.
func (s *AssignmentService) Create(ctx context.Context, req CreateAssignmentRequest) (*models.Assignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}
	return s.api.CreateAssignment(ctx, gateway.CreateAssignmentRequest{
		StudentID:   req.StudentID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
}

// Update updates an assignment and returns the reconciled record.
func (s *AssignmentService) Update(ctx context.Context, id string, req UpdateAssignmentRequest) (*models.Assignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}
	return s.api.UpdateAssignment(ctx, id, gateway.UpdateAssignmentRequest{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	})
}

// MarkCompleted is the one mutation students may perform on their homework.
// Only the completed flag travels; other fields stay untouched.
func (s *AssignmentService) MarkCompleted(ctx context.Context, id string, completed bool) (*models.Assignment, error) {
	return s.api.UpdateAssignment(ctx, id, gateway.UpdateAssignmentRequest{Completed: &completed})
}

// Delete removes an assignment.
func (s *AssignmentService) Delete(ctx context.Context, id string) error {
	return s.api.DeleteAssignment(ctx, id)
}
