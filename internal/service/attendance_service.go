package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/armonia-apps/msa-client-api/internal/gateway"
	"github.com/armonia-apps/msa-client-api/internal/models"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
)

type attendanceAPI interface {
	ListAttendance(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error)
	CreateAttendance(ctx context.Context, req gateway.CreateAttendanceRequest) (*models.Attendance, error)
	UpdateAttendance(ctx context.Context, id string, req gateway.UpdateAttendanceRequest) (*models.Attendance, error)
	DeleteAttendance(ctx context.Context, id string) error
}

// CreateAttendanceRequest records a presence for a student on a date.
type CreateAttendanceRequest struct {
	StudentID string `json:"allievo_id" validate:"required"`
	Date      string `json:"data" validate:"required,datetime=2006-01-02"`
	Status    string `json:"stato" validate:"required,oneof=presente assente giustificato"`
	Notes     string `json:"note"`
}

// UpdateAttendanceRequest carries the mutable attendance attributes.
type UpdateAttendanceRequest struct {
	Status     *string `json:"stato,omitempty" validate:"omitempty,oneof=presente assente giustificato"`
	MakeupDate *string `json:"recupero_data,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes      *string `json:"note,omitempty"`
}

// AttendanceService manages presence records. Students are pinned to their
// own records before the request leaves the process; teachers rely on the
// backend scoping to their students.
type AttendanceService struct {
	api       attendanceAPI
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAttendanceService creates an instance of AttendanceService.
func NewAttendanceService(api attendanceAPI, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AttendanceService{api: api, validator: validate, logger: logger}
}

// List returns attendance records matching the filter, scoped to the actor.
func (s *AttendanceService) List(ctx context.Context, actor *models.User, filter models.AttendanceFilter) ([]models.Attendance, error) {
	if actor != nil && actor.Role == models.RoleStudent {
		filter.StudentID = actor.ID
	}
	return s.api.ListAttendance(ctx, filter)
}

// Create records a new presence entry.
func (s *AttendanceService) Create(ctx context.Context, req CreateAttendanceRequest) (*models.Attendance, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}
	return s.api.CreateAttendance(ctx, gateway.CreateAttendanceRequest{
		StudentID: req.StudentID,
		Date:      req.Date,
		Status:    req.Status,
		Notes:     req.Notes,
	})
}

// Update updates a presence entry and returns the reconciled record.
func (s *AttendanceService) Update(ctx context.Context, id string, req UpdateAttendanceRequest) (*models.Attendance, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}
	return s.api.UpdateAttendance(ctx, id, gateway.UpdateAttendanceRequest{
		Status:     req.Status,
		MakeupDate: req.MakeupDate,
		Notes:      req.Notes,
	})
}

// Delete removes a presence entry.
func (s *AttendanceService) Delete(ctx context.Context, id string) error {
	return s.api.DeleteAttendance(ctx, id)
}
