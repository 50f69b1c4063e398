package models

import "time"

// AttendanceStatus enumerates the backend's attendance states.
type AttendanceStatus string

const (
	AttendancePresent   AttendanceStatus = "presente"
	AttendanceAbsent    AttendanceStatus = "assente"
	AttendanceJustified AttendanceStatus = "giustificato"
)

// Attendance is one student's presence record for a lesson date.
type Attendance struct {
	ID           string           `json:"id"`
	CourseID     string           `json:"corso_id,omitempty"`
	LessonID     string           `json:"lezione_id,omitempty"`
	StudentID    string           `json:"allievo_id"`
	TeacherID    string           `json:"insegnante_id"`
	Date         string           `json:"data"`
	Status       AttendanceStatus `json:"stato"`
	MakeupDate   string           `json:"recupero_data,omitempty"`
	Notes        string           `json:"note,omitempty"`
	CreatedAt    *time.Time       `json:"data_creazione,omitempty"`
}

// AttendanceFilter captures filtering criteria for listing attendance.
// Identity scoping (own records for students, own students for teachers)
// happens server-side; these are the caller-visible refinements.
type AttendanceFilter struct {
	StudentID string
	FromDate  string
	ToDate    string
}

// Assignment is homework assigned by a teacher to a student.
type Assignment struct {
	ID          string     `json:"id"`
	TeacherID   string     `json:"insegnante_id"`
	StudentID   string     `json:"allievo_id"`
	Title       string     `json:"titolo"`
	Description string     `json:"descrizione"`
	DueDate     string     `json:"data_scadenza"`
	Completed   bool       `json:"completato"`
	CreatedAt   *time.Time `json:"data_creazione,omitempty"`
}

// AssignmentFilter captures filtering criteria for listing assignments.
type AssignmentFilter struct {
	StudentID string
	Completed *bool
}
