package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/armonia-apps/msa-client-api/internal/capability"
	"github.com/armonia-apps/msa-client-api/internal/middleware"
	"github.com/armonia-apps/msa-client-api/internal/session"
	"github.com/armonia-apps/msa-client-api/internal/service"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Sessions      *session.Store
	Users         *service.UserService
	Courses       *service.CourseService
	Attendance    *service.AttendanceService
	Assignments   *service.AssignmentService
	Payments      *service.PaymentService
	Notifications *service.NotificationService
	Dashboard     *service.DashboardService
	Admin         *service.AdminService
	Exports       *service.ExportService
	Metrics       *service.MetricsService
}

// RegisterRoutes mounts the whole client surface under prefix. Session
// endpoints stay open so the UI shell can drive the login flow; everything
// else sits behind the session and capability gates.
func RegisterRoutes(r *gin.Engine, prefix string, deps Deps) {
	sessions := NewSessionHandler(deps.Sessions)
	users := NewUserHandler(deps.Users)
	courses := NewCourseHandler(deps.Courses)
	attendance := NewAttendanceHandler(deps.Attendance)
	assignments := NewAssignmentHandler(deps.Assignments)
	payments := NewPaymentHandler(deps.Payments)
	notifications := NewNotificationHandler(deps.Notifications)
	dashboard := NewDashboardHandler(deps.Dashboard)
	admin := NewAdminHandler(deps.Admin)
	exports := NewExportHandler(deps.Exports)
	metrics := NewMetricsHandler(deps.Metrics)

	r.GET("/metrics", metrics.Prometheus)
	r.GET("/metrics/snapshot", metrics.Snapshot)

	root := r.Group(prefix)

	root.GET("/session", sessions.Current)
	root.POST("/session/login", sessions.Login)
	root.POST("/session/admin/pin", sessions.AdminPin)
	root.POST("/session/admin/google", sessions.AdminGoogle)
	root.POST("/session/logout", sessions.Logout)
	root.POST("/session/refresh", sessions.Refresh)

	guarded := root.Group("", middleware.RequireSession(deps.Sessions))
	gate := func(action capability.Action) gin.HandlerFunc {
		return middleware.RequireAction(deps.Sessions, action)
	}

	guarded.GET("/dashboard", dashboard.Show)

	userRoutes := guarded.Group("/users", gate(capability.ActionUsersManage))
	userRoutes.GET("", users.List)
	userRoutes.POST("", users.Create)
	userRoutes.GET("/:id", users.Get)
	userRoutes.PUT("/:id", users.Update)
	userRoutes.DELETE("/:id", users.Delete)
	userRoutes.POST("/:id/student-detail", users.SetStudentDetail)
	userRoutes.POST("/:id/teacher-detail", users.SetTeacherDetail)

	guarded.GET("/roster", gate(capability.ActionRosterView), users.Roster)

	guarded.GET("/courses", gate(capability.ActionCoursesView), courses.ListCourses)
	guarded.POST("/courses", gate(capability.ActionCoursesManage), courses.CreateCourse)
	guarded.PUT("/courses/:id", gate(capability.ActionCoursesManage), courses.UpdateCourse)
	guarded.DELETE("/courses/:id", gate(capability.ActionCoursesManage), courses.DeleteCourse)

	guarded.GET("/lessons", gate(capability.ActionCoursesView), courses.ListLessons)
	guarded.POST("/lessons", gate(capability.ActionLessonsManage), courses.CreateLesson)
	guarded.PUT("/lessons/:id", gate(capability.ActionLessonsManage), courses.UpdateLesson)
	guarded.DELETE("/lessons/:id", gate(capability.ActionLessonsManage), courses.DeleteLesson)

	guarded.GET("/attendance", gate(capability.ActionAttendanceView), attendance.List)
	guarded.POST("/attendance", gate(capability.ActionAttendanceRecord), attendance.Create)
	guarded.PUT("/attendance/:id", gate(capability.ActionAttendanceManage), attendance.Update)
	guarded.DELETE("/attendance/:id", gate(capability.ActionAttendanceManage), attendance.Delete)

	guarded.GET("/assignments", gate(capability.ActionAssignmentsView), assignments.List)
	guarded.POST("/assignments", gate(capability.ActionAssignmentsManage), assignments.Create)
	guarded.PUT("/assignments/:id", gate(capability.ActionAssignmentsManage), assignments.Update)
	guarded.DELETE("/assignments/:id", gate(capability.ActionAssignmentsManage), assignments.Delete)
	guarded.POST("/assignments/:id/complete", gate(capability.ActionAssignmentComplete), assignments.Complete)

	guarded.GET("/payments", gate(capability.ActionPaymentsView), payments.List)
	guarded.POST("/payments", gate(capability.ActionPaymentsManage), payments.Create)
	guarded.PUT("/payments/:id", gate(capability.ActionPaymentsManage), payments.Update)
	guarded.DELETE("/payments/:id", gate(capability.ActionPaymentsManage), payments.Delete)

	guarded.GET("/notifications", gate(capability.ActionNotificationsView), notifications.List)
	guarded.POST("/notifications", gate(capability.ActionNotificationsSend), notifications.Create)
	guarded.PUT("/notifications/:id", gate(capability.ActionNotificationsSend), notifications.Update)
	guarded.DELETE("/notifications/:id", gate(capability.ActionNotificationsSend), notifications.Delete)

	guarded.GET("/stats", gate(capability.ActionStatsView), admin.Stats)
	guarded.GET("/settings", gate(capability.ActionSettingsManage), admin.Settings)
	guarded.PUT("/settings", gate(capability.ActionSettingsManage), admin.UpdateSettings)
	guarded.POST("/seed", gate(capability.ActionSeed), admin.Seed)

	guarded.GET("/exports/attendance", gate(capability.ActionExport), exports.Attendance)
	guarded.GET("/exports/payments", gate(capability.ActionExport), exports.Payments)
}
