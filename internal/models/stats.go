package models

import "time"

// AdminStats is the backend's dashboard summary for administrators.
type AdminStats struct {
	ActiveStudents      int `json:"allievi_attivi"`
	ActiveTeachers      int `json:"insegnanti_attivi"`
	UnpaidPayments      int `json:"pagamenti_non_pagati"`
	ActiveNotifications int `json:"notifiche_attive"`
	AttendanceToday     int `json:"presenze_oggi"`
	ActiveCourses       int `json:"corsi_attivi,omitempty"`
}

// SystemMetrics is an aggregated view of local gateway activity, served
// alongside the Prometheus endpoint for quick diagnostics.
type SystemMetrics struct {
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"avg_request_duration_ms"`
	BackendCallsTotal        uint64    `json:"backend_calls_total"`
	AverageBackendDurationMs float64   `json:"avg_backend_duration_ms"`
	BackendFailures          uint64    `json:"backend_failures"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}

// Settings are the school-wide payment defaults, editable by admin.
type Settings struct {
	PaymentDueDay       int     `json:"payment_due_day"`
	PaymentToleranceDay int     `json:"payment_tolerance_days"`
	DefaultMonthlyFee   float64 `json:"default_monthly_fee"`
	AnnualReminderDays  int     `json:"annual_reminder_days"`
}
