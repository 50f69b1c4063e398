package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/armonia-apps/msa-client-api/internal/models"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
)

type dashboardAPI interface {
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	ListLessons(ctx context.Context, filter models.LessonFilter) ([]models.Lesson, error)
	ListMyStudents(ctx context.Context) ([]models.User, error)
	ListAssignments(ctx context.Context, filter models.AssignmentFilter) ([]models.Assignment, error)
	ListPayments(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, error)
	ListAttendance(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error)
	ListNotifications(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, error)
}

// AdminDashboard is the landing payload for administrators.
type AdminDashboard struct {
	Stats         *models.AdminStats    `json:"stats"`
	Notifications []models.Notification `json:"notifications"`
}

// TeacherDashboard is the landing payload for teachers.
type TeacherDashboard struct {
	TodayLessons  []models.Lesson       `json:"today_lessons"`
	StudentCount  int                   `json:"student_count"`
	Notifications []models.Notification `json:"notifications"`
}

// StudentDashboard is the landing payload for students.
type StudentDashboard struct {
	PendingAssignments []models.Assignment   `json:"pending_assignments"`
	PendingPayments    []models.Payment      `json:"pending_payments"`
	RecentAttendance   []models.Attendance   `json:"recent_attendance"`
	Notifications      []models.Notification `json:"notifications"`
}

// DashboardService composes the role-specific landing screens out of the
// scoped list calls each role is allowed to make. The payload shape depends
// on the role of the live session, nothing else.
type DashboardService struct {
	api    dashboardAPI
	logger *zap.Logger
	now    func() time.Time
}

// NewDashboardService creates an instance of DashboardService.
func NewDashboardService(api dashboardAPI, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{api: api, logger: logger, now: time.Now}
}

// ForUser dispatches to the role-specific composition.
func (s *DashboardService) ForUser(ctx context.Context, actor *models.User) (interface{}, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	switch actor.Role {
	case models.RoleAdmin:
		return s.admin(ctx)
	case models.RoleTeacher:
		return s.teacher(ctx, actor)
	case models.RoleStudent:
		return s.student(ctx, actor)
	}
	return nil, appErrors.Clone(appErrors.ErrForbidden, "unknown role")
}

func (s *DashboardService) admin(ctx context.Context) (*AdminDashboard, error) {
	stats, err := s.api.AdminStats(ctx)
	if err != nil {
		return nil, err
	}
	notifications, err := s.api.ListNotifications(ctx, models.NotificationFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	return &AdminDashboard{Stats: stats, Notifications: notifications}, nil
}

func (s *DashboardService) teacher(ctx context.Context, actor *models.User) (*TeacherDashboard, error) {
	today := s.now().Format("2006-01-02")
	lessons, err := s.api.ListLessons(ctx, models.LessonFilter{
		TeacherID: actor.ID,
		FromDate:  today,
		ToDate:    today,
	})
	if err != nil {
		return nil, err
	}
	students, err := s.api.ListMyStudents(ctx)
	if err != nil {
		return nil, err
	}
	notifications, err := s.api.ListNotifications(ctx, models.NotificationFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	return &TeacherDashboard{
		TodayLessons:  lessons,
		StudentCount:  len(students),
		Notifications: notifications,
	}, nil
}

func (s *DashboardService) student(ctx context.Context, actor *models.User) (*StudentDashboard, error) {
	pending := false
	assignments, err := s.api.ListAssignments(ctx, models.AssignmentFilter{
		StudentID: actor.ID,
		Completed: &pending,
	})
	if err != nil {
		return nil, err
	}
	payments, err := s.api.ListPayments(ctx, models.PaymentFilter{
		UserID: actor.ID,
		Status: string(models.PaymentPending),
	})
	if err != nil {
		return nil, err
	}
	monthAgo := s.now().AddDate(0, -1, 0).Format("2006-01-02")
	attendance, err := s.api.ListAttendance(ctx, models.AttendanceFilter{
		StudentID: actor.ID,
		FromDate:  monthAgo,
	})
	if err != nil {
		return nil, err
	}
	notifications, err := s.api.ListNotifications(ctx, models.NotificationFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	return &StudentDashboard{
		PendingAssignments: assignments,
		PendingPayments:    payments,
		RecentAttendance:   attendance,
		Notifications:      notifications,
	}, nil
}
