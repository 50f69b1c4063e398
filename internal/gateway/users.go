package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/armonia-apps/msa-client-api/internal/models"
)

// CreateUserRequest is the payload for creating a user record.
type CreateUserRequest struct {
	Role       models.UserRole `json:"ruolo"`
	GivenName  string          `json:"nome"`
	FamilyName string          `json:"cognome"`
	Email      string          `json:"email"`
	Password   string          `json:"password"`
	AdminNotes string          `json:"note_admin,omitempty"`
}

// UpdateUserRequest carries the mutable user attributes. Nil fields are
// omitted so the backend leaves them untouched.
type UpdateUserRequest struct {
	GivenName  *string          `json:"nome,omitempty"`
	FamilyName *string          `json:"cognome,omitempty"`
	Email      *string          `json:"email,omitempty"`
	Role       *models.UserRole `json:"ruolo,omitempty"`
	Active     *bool            `json:"attivo,omitempty"`
	Password   *string          `json:"password,omitempty"`
	AdminNotes *string          `json:"note_admin,omitempty"`
}

// StudentDetailRequest updates the student-specific attributes of a user.
type StudentDetailRequest struct {
	Phone      string `json:"telefono,omitempty"`
	BirthDate  string `json:"data_nascita,omitempty"`
	MainCourse string `json:"corso_principale,omitempty"`
	Notes      string `json:"note,omitempty"`
}

// TeacherDetailRequest updates the teacher-specific attributes of a user.
type TeacherDetailRequest struct {
	Specialization string   `json:"specializzazione,omitempty"`
	HourlyRate     *float64 `json:"compenso_orario,omitempty"`
	Notes          string   `json:"note,omitempty"`
}

// ListUsers fetches users matching the filter.
func (c *Client) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	q := url.Values{}
	if filter.Role != nil {
		q.Set("ruolo", string(*filter.Role))
	}
	setIfPresent(q, "attivo", boolParam(filter.Active))

	var out []models.User
	if err := c.do(ctx, http.MethodGet, "/utenti", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUser fetches a single user by ID.
func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/utenti/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUser creates a new user record.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPost, "/utenti", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser updates an existing user and returns the reconciled record.
func (c *Client) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPut, "/utenti/"+id, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes a user record.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/utenti/"+id, nil, nil, nil)
}

// SetStudentDetail attaches or updates the student detail for a user.
func (c *Client) SetStudentDetail(ctx context.Context, id string, req StudentDetailRequest) (*models.UserDetail, error) {
	var out models.UserDetail
	if err := c.do(ctx, http.MethodPost, "/utenti/"+id+"/dettaglio-allievo", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetTeacherDetail attaches or updates the teacher detail for a user.
func (c *Client) SetTeacherDetail(ctx context.Context, id string, req TeacherDetailRequest) (*models.UserDetail, error) {
	var out models.UserDetail
	if err := c.do(ctx, http.MethodPost, "/utenti/"+id+"/dettaglio-insegnante", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckDuplicates asks the backend whether a matching user already exists.
func (c *Client) CheckDuplicates(ctx context.Context, email, givenName, familyName, birthDate string) (*models.DuplicateCheck, error) {
	q := url.Values{}
	setIfPresent(q, "email", email)
	setIfPresent(q, "nome", givenName)
	setIfPresent(q, "cognome", familyName)
	setIfPresent(q, "data_nascita", birthDate)

	var out models.DuplicateCheck
	if err := c.do(ctx, http.MethodGet, "/utenti/check-duplicates", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMyStudents returns the students visible to the calling teacher (all
// active students for admins). Scoping happens server-side.
func (c *Client) ListMyStudents(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := c.do(ctx, http.MethodGet, "/insegnante/allievi", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
