package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/armonia-apps/msa-client-api/internal/models"
)

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	Name        string `json:"nome"`
	Instrument  string `json:"strumento"`
	TeacherID   string `json:"insegnante_id"`
	Description string `json:"descrizione,omitempty"`
}

// UpdateCourseRequest carries the mutable course attributes.
type UpdateCourseRequest struct {
	Name        *string `json:"nome,omitempty"`
	Instrument  *string `json:"strumento,omitempty"`
	TeacherID   *string `json:"insegnante_id,omitempty"`
	Description *string `json:"descrizione,omitempty"`
	Active      *bool   `json:"attivo,omitempty"`
}

// ListCourses fetches courses matching the filter. Teachers are scoped to
// their own courses server-side regardless of the filter.
func (c *Client) ListCourses(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	q := url.Values{}
	setIfPresent(q, "insegnante_id", filter.TeacherID)
	setIfPresent(q, "attivo", boolParam(filter.Active))

	var out []models.Course
	if err := c.do(ctx, http.MethodGet, "/corsi", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCourse creates a new course.
func (c *Client) CreateCourse(ctx context.Context, req CreateCourseRequest) (*models.Course, error) {
	var out models.Course
	if err := c.do(ctx, http.MethodPost, "/corsi", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCourse updates a course and returns the reconciled record.
func (c *Client) UpdateCourse(ctx context.Context, id string, req UpdateCourseRequest) (*models.Course, error) {
	var out models.Course
	if err := c.do(ctx, http.MethodPut, "/corsi/"+id, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCourse removes a course.
func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/corsi/"+id, nil, nil, nil)
}
