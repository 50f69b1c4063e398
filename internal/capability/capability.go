package capability

import "github.com/armonia-apps/msa-client-api/internal/models"

// Screen names a navigable view in the client.
type Screen string

const (
	ScreenDashboard     Screen = "dashboard"
	ScreenUsers         Screen = "users"
	ScreenCourses       Screen = "courses"
	ScreenAttendance    Screen = "attendance"
	ScreenAssignments   Screen = "assignments"
	ScreenPayments      Screen = "payments"
	ScreenNotifications Screen = "notifications"
	ScreenSettings      Screen = "settings"
)

// Action names a role-gated operation a screen can offer.
type Action string

const (
	ActionUsersManage        Action = "users.manage"
	ActionCoursesView        Action = "courses.view"
	ActionCoursesManage      Action = "courses.manage"
	ActionLessonsManage      Action = "lessons.manage"
	ActionAttendanceView     Action = "attendance.view"
	ActionAttendanceRecord   Action = "attendance.record"
	ActionAttendanceManage   Action = "attendance.manage"
	ActionAssignmentsView    Action = "assignments.view"
	ActionAssignmentsManage  Action = "assignments.manage"
	ActionAssignmentComplete Action = "assignments.complete"
	ActionPaymentsView       Action = "payments.view"
	ActionPaymentsManage     Action = "payments.manage"
	ActionNotificationsView  Action = "notifications.view"
	ActionNotificationsSend  Action = "notifications.send"
	ActionStatsView          Action = "stats.view"
	ActionSettingsManage     Action = "settings.manage"
	ActionRosterView         Action = "roster.view"
	ActionExport             Action = "export"
	ActionSeed               Action = "seed"
)

// Set is the capability set derived from a role: the screens and actions
// the client may surface. It must always be derived from the live session
// role, never cached across a login/logout cycle.
type Set struct {
	Screens []Screen `json:"screens"`
	Actions []Action `json:"actions"`
}

// Allows reports whether the action belongs to the set.
func (s Set) Allows(action Action) bool {
	for _, a := range s.Actions {
		if a == action {
			return true
		}
	}
	return false
}

// HasScreen reports whether the screen belongs to the set.
func (s Set) HasScreen(screen Screen) bool {
	for _, sc := range s.Screens {
		if sc == screen {
			return true
		}
	}
	return false
}

// ForRole is the pure mapping from role to capability set. An unknown or
// empty role yields the empty set, so nothing renders for an unresolved
// session.
func ForRole(role models.UserRole) Set {
	switch role {
	case models.RoleAdmin:
		return Set{
			Screens: []Screen{
				ScreenDashboard, ScreenUsers, ScreenCourses, ScreenAttendance,
				ScreenAssignments, ScreenPayments, ScreenNotifications, ScreenSettings,
			},
			Actions: []Action{
				ActionUsersManage,
				ActionCoursesView, ActionCoursesManage, ActionLessonsManage,
				ActionAttendanceView, ActionAttendanceRecord, ActionAttendanceManage,
				ActionAssignmentsView, ActionAssignmentsManage, ActionAssignmentComplete,
				ActionPaymentsView, ActionPaymentsManage,
				ActionNotificationsView, ActionNotificationsSend,
				ActionStatsView, ActionSettingsManage,
				ActionRosterView, ActionExport, ActionSeed,
			},
		}
	case models.RoleTeacher:
		return Set{
			Screens: []Screen{
				ScreenDashboard, ScreenCourses, ScreenAttendance,
				ScreenAssignments, ScreenPayments, ScreenNotifications,
			},
			// Teachers record attendance during the lesson; once saved only
			// the administrator may modify or delete a record.
			Actions: []Action{
				ActionCoursesView,
				ActionAttendanceView, ActionAttendanceRecord,
				ActionAssignmentsView, ActionAssignmentsManage,
				ActionPaymentsView,
				ActionNotificationsView,
				ActionRosterView,
			},
		}
	case models.RoleStudent:
		return Set{
			Screens: []Screen{
				ScreenDashboard, ScreenAttendance, ScreenAssignments,
				ScreenPayments, ScreenNotifications,
			},
			Actions: []Action{
				ActionAttendanceView,
				ActionAssignmentsView, ActionAssignmentComplete,
				ActionPaymentsView,
				ActionNotificationsView,
			},
		}
	}
	return Set{}
}
