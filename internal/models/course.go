package models

import "time"

// TeacherRef is the denormalised teacher name the backend embeds in course
// and lesson payloads.
type TeacherRef struct {
	GivenName  string `json:"nome"`
	FamilyName string `json:"cognome"`
}

// Course represents an instrument course taught by one teacher.
type Course struct {
	ID          string      `json:"id"`
	Name        string      `json:"nome"`
	Instrument  string      `json:"strumento"`
	TeacherID   string      `json:"insegnante_id"`
	Description string      `json:"descrizione,omitempty"`
	Active      bool        `json:"attivo"`
	CreatedAt   *time.Time  `json:"data_creazione,omitempty"`
	Teacher     *TeacherRef `json:"insegnante,omitempty"`
}

// CourseFilter captures filtering criteria for listing courses.
type CourseFilter struct {
	TeacherID string
	Active    *bool
}

// CourseRef is the denormalised course info embedded in lesson payloads.
type CourseRef struct {
	Name       string `json:"nome"`
	Instrument string `json:"strumento"`
}

// Lesson is a scheduled occurrence of a course.
type Lesson struct {
	ID        string      `json:"id"`
	CourseID  string      `json:"corso_id"`
	TeacherID string      `json:"insegnante_id"`
	Date      string      `json:"data"`
	Time      string      `json:"ora"`
	Duration  int         `json:"durata"`
	Notes     string      `json:"note,omitempty"`
	CreatedAt *time.Time  `json:"data_creazione,omitempty"`
	Course    *CourseRef  `json:"corso,omitempty"`
	Teacher   *TeacherRef `json:"insegnante,omitempty"`
}

// LessonFilter captures filtering criteria for listing lessons.
type LessonFilter struct {
	CourseID  string
	TeacherID string
	FromDate  string
	ToDate    string
}
