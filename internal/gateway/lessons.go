package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/armonia-apps/msa-client-api/internal/models"
)

// CreateLessonRequest is the payload for scheduling a lesson.
type CreateLessonRequest struct {
	CourseID string `json:"corso_id"`
	Date     string `json:"data"`
	Time     string `json:"ora"`
	Duration int    `json:"durata"`
	Notes    string `json:"note,omitempty"`
}

// UpdateLessonRequest carries the mutable lesson attributes.
type UpdateLessonRequest struct {
	Date     *string `json:"data,omitempty"`
	Time     *string `json:"ora,omitempty"`
	Duration *int    `json:"durata,omitempty"`
	Notes    *string `json:"note,omitempty"`
}

// ListLessons fetches lessons matching the filter.
func (c *Client) ListLessons(ctx context.Context, filter models.LessonFilter) ([]models.Lesson, error) {
	q := url.Values{}
	setIfPresent(q, "corso_id", filter.CourseID)
	setIfPresent(q, "insegnante_id", filter.TeacherID)
	setIfPresent(q, "from_date", filter.FromDate)
	setIfPresent(q, "to_date", filter.ToDate)

	var out []models.Lesson
	if err := c.do(ctx, http.MethodGet, "/lezioni", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLesson schedules a new lesson.
func (c *Client) CreateLesson(ctx context.Context, req CreateLessonRequest) (*models.Lesson, error) {
	var out models.Lesson
	if err := c.do(ctx, http.MethodPost, "/lezioni", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLesson updates a lesson and returns the reconciled record.
func (c *Client) UpdateLesson(ctx context.Context, id string, req UpdateLessonRequest) (*models.Lesson, error) {
	var out models.Lesson
	if err := c.do(ctx, http.MethodPut, "/lezioni/"+id, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteLesson removes a lesson.
func (c *Client) DeleteLesson(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/lezioni/"+id, nil, nil, nil)
}
