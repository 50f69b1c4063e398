package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/armonia-apps/msa-client-api/internal/models"
)

// CreateAttendanceRequest records a presence for a student on a date.
type CreateAttendanceRequest struct {
	StudentID string `json:"allievo_id"`
	Date      string `json:"data"`
	Status    string `json:"stato"`
	Notes     string `json:"note,omitempty"`
}

// UpdateAttendanceRequest carries the mutable attendance attributes.
type UpdateAttendanceRequest struct {
	Status     *string `json:"stato,omitempty"`
	MakeupDate *string `json:"recupero_data,omitempty"`
	Notes      *string `json:"note,omitempty"`
}

// ListAttendance fetches attendance records matching the filter. The
// backend scopes results to the caller's identity (own records for
// students, own students for teachers).
func (c *Client) ListAttendance(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error) {
	q := url.Values{}
	setIfPresent(q, "allievo_id", filter.StudentID)
	setIfPresent(q, "from_date", filter.FromDate)
	setIfPresent(q, "to_date", filter.ToDate)

	var out []models.Attendance
	if err := c.do(ctx, http.MethodGet, "/presenze", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAttendance records a new presence entry.
func (c *Client) CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (*models.Attendance, error) {
	var out models.Attendance
	if err := c.do(ctx, http.MethodPost, "/presenze", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAttendance updates a presence entry and returns the reconciled record.
func (c *Client) UpdateAttendance(ctx context.Context, id string, req UpdateAttendanceRequest) (*models.Attendance, error) {
	var out models.Attendance
	if err := c.do(ctx, http.MethodPut, "/presenze/"+id, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAttendance removes a presence entry.
func (c *Client) DeleteAttendance(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/presenze/"+id, nil, nil, nil)
}
