package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/armonia-apps/msa-client-api/internal/gateway"
	"github.com/armonia-apps/msa-client-api/internal/models"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
)

type courseAPI interface {
	ListCourses(ctx context.Context, filter models.CourseFilter) ([]models.Course, error)
	CreateCourse(ctx context.Context, req gateway.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id string, req gateway.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string) error
	ListLessons(ctx context.Context, filter models.LessonFilter) ([]models.Lesson, error)
	CreateLesson(ctx context.Context, req gateway.CreateLessonRequest) (*models.Lesson, error)
	UpdateLesson(ctx context.Context, id string, req gateway.UpdateLessonRequest) (*models.Lesson, error)
	DeleteLesson(ctx context.Context, id string) error
}

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	Name        string `json:"nome" validate:"required"`
	Instrument  string `json:"strumento" validate:"required"`
	TeacherID   string `json:"insegnante_id" validate:"required"`
	Description string `json:"descrizione"`
}

// UpdateCourseRequest carries the mutable course attributes.
type UpdateCourseRequest struct {
	Name        *string `json:"nome,omitempty"`
	Instrument  *string `json:"strumento,omitempty"`
	TeacherID   *string `json:"insegnante_id,omitempty"`
	Description *string `json:"descrizione,omitempty"`
	Active      *bool   `json:"attivo,omitempty"`
}

// CreateLessonRequest is the payload for scheduling a lesson.
type CreateLessonRequest struct {
	CourseID string `json:"corso_id" validate:"required"`
	Date     string `json:"data" validate:"required,datetime=2006-01-02"`
	Time     string `json:"ora" validate:"required"`
	Duration int    `json:"durata" validate:"required,gt=0"`
	Notes    string `json:"note"`
}

// UpdateLessonRequest carries the mutable lesson attributes.
type UpdateLessonRequest struct {
	Date     *string `json:"data,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time     *string `json:"ora,omitempty"`
	Duration *int    `json:"durata,omitempty" validate:"omitempty,gt=0"`
	Notes    *string `json:"note,omitempty"`
}

// CourseService covers courses and their scheduled lessons. Teachers see
// their own courses and lessons; the identity filter travels to the backend
// as a query parameter instead of fetching everything and filtering here.
type CourseService struct {
	api       courseAPI
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService creates an instance of CourseService.
func NewCourseService(api courseAPI, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CourseService{api: api, validator: validate, logger: logger}
}

// ListCourses returns courses matching the filter, scoped to the actor.
func (s *CourseService) ListCourses(ctx context.Context, actor *models.User, filter models.CourseFilter) ([]models.Course, error) {
	if actor != nil && actor.Role == models.RoleTeacher {
		filter.TeacherID = actor.ID
	}
	return s.api.ListCourses(ctx, filter)
}

// CreateCourse creates a new course.
func (s *CourseService) CreateCourse(ctx context.Context, req CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	return s.api.CreateCourse(ctx, gateway.CreateCourseRequest{
		Name:        req.Name,
		Instrument:  req.Instrument,
		TeacherID:   req.TeacherID,
		Description: req.Description,
	})
}

// UpdateCourse updates a course and returns the reconciled record.
func (s *CourseService) UpdateCourse(ctx context.Context, id string, req UpdateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	return s.api.UpdateCourse(ctx, id, gateway.UpdateCourseRequest{
		Name:        req.Name,
		Instrument:  req.Instrument,
		TeacherID:   req.TeacherID,
		Description: req.Description,
		Active:      req.Active,
	})
}

// DeleteCourse removes a course.
func (s *CourseService) DeleteCourse(ctx context.Context, id string) error {
	return s.api.DeleteCourse(ctx, id)
}

// ListLessons returns lessons matching the filter, scoped to the actor.
func (s *CourseService) ListLessons(ctx context.Context, actor *models.User, filter models.LessonFilter) ([]models.Lesson, error) {
	if actor != nil && actor.Role == models.RoleTeacher {
		filter.TeacherID = actor.ID
	}
	return s.api.ListLessons(ctx, filter)
}

// CreateLesson schedules a new lesson.
func (s *CourseService) CreateLesson(ctx context.Context, req CreateLessonRequest) (*models.Lesson, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid lesson payload")
	}
	return s.api.CreateLesson(ctx, gateway.CreateLessonRequest{
		CourseID: req.CourseID,
		Date:     req.Date,
		Time:     req.Time,
		Duration: req.Duration,
		Notes:    req.Notes,
	})
}

// UpdateLesson updates a lesson and returns the reconciled record.
func (s *CourseService) UpdateLesson(ctx context.Context, id string, req UpdateLessonRequest) (*models.Lesson, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid lesson payload")
	}
	return s.api.UpdateLesson(ctx, id, gateway.UpdateLessonRequest{
		Date:     req.Date,
		Time:     req.Time,
		Duration: req.Duration,
		Notes:    req.Notes,
	})
}

// DeleteLesson removes a lesson.
func (s *CourseService) DeleteLesson(ctx context.Context, id string) error {
	return s.api.DeleteLesson(ctx, id)
}
