package models

import (
	"encoding/json"
	"time"
)

// UserRole represents the roles recognised by the school backend. The wire
// values are the backend's Italian ones.
type UserRole string

const (
	RoleAdmin   UserRole = "amministratore"
	RoleTeacher UserRole = "insegnante"
	RoleStudent UserRole = "allievo"
)

// Valid reports whether the role is one the client knows how to gate.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// UserDetail carries the role-specific attributes attached to a user record.
// Students have phone/birth date/main course, teachers have specialization
// and hourly compensation.
type UserDetail struct {
	ID             string   `json:"id,omitempty"`
	UserID         string   `json:"utente_id,omitempty"`
	Phone          string   `json:"telefono,omitempty"`
	BirthDate      string   `json:"data_nascita,omitempty"`
	MainCourse     string   `json:"corso_principale,omitempty"`
	Specialization string   `json:"specializzazione,omitempty"`
	HourlyRate     *float64 `json:"compenso_orario,omitempty"`
	Notes          string   `json:"note,omitempty"`
}

// User is the canonical identity record. Created and edited only by admin
// through the backend; the client never mutates it except by issuing update
// requests and reconciling the response.
type User struct {
	ID         string      `json:"id"`
	Role       UserRole    `json:"ruolo"`
	GivenName  string      `json:"nome"`
	FamilyName string      `json:"cognome"`
	Email      string      `json:"email"`
	Active     bool        `json:"attivo"`
	FirstLogin bool        `json:"first_login,omitempty"`
	BirthDate  string      `json:"data_nascita,omitempty"`
	CreatedAt  *time.Time  `json:"data_creazione,omitempty"`
	LastAccess *time.Time  `json:"ultimo_accesso,omitempty"`
	AdminNotes string      `json:"note_admin,omitempty"`
	Detail     *UserDetail `json:"dettaglio,omitempty"`
}

// UnmarshalJSON normalises legacy payload shapes at the API boundary: old
// records carry a single "name" field instead of nome/cognome. Business
// logic only ever sees the canonical fields.
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	aux := struct {
		*alias
		LegacyName string `json:"name"`
	}{alias: (*alias)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if u.GivenName == "" && aux.LegacyName != "" {
		u.GivenName = aux.LegacyName
	}
	return nil
}

// UserFilter captures filtering criteria for listing users.
type UserFilter struct {
	Role   *UserRole
	Active *bool
}

// DuplicateCheck is the backend's answer to a pre-creation duplicate probe.
type DuplicateCheck struct {
	Exists  bool   `json:"exists"`
	Message string `json:"message,omitempty"`
}
