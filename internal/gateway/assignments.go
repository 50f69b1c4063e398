package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/armonia-apps/msa-client-api/internal/models"
)

// CreateAssignmentRequest is the payload for assigning homework.
type CreateAssignmentRequest struct {
	StudentID   string `json:"allievo_id"`
	Title       string `json:"titolo"`
	Description string `json:"descrizione"`
	DueDate     string `json:"data_scadenza"`
}

// UpdateAssignmentRequest carries the mutable assignment attributes. The
// backend restricts students to the completed flag.
type UpdateAssignmentRequest struct {
	Title       *string `json:"titolo,omitempty"`
	Description *string `json:"descrizione,omitempty"`
	DueDate     *string `json:"data_scadenza,omitempty"`
	Completed   *bool   `json:"completato,omitempty"`
}

// ListAssignments fetches assignments matching the filter.
func (c *Client) ListAssignments(ctx context.Context, filter models.AssignmentFilter) ([]models.Assignment, error) {
	q := url.Values{}
	setIfPresent(q, "allievo_id", filter.StudentID)
	setIfPresent(q, "completato", boolParam(filter.Completed))

	var out []models.Assignment
	if err := c.do(ctx, http.MethodGet, "/compiti", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAssignment assigns new homework to a student.
func (c *Client) CreateAssignment(ctx context.Context, req CreateAssignmentRequest) (*models.Assignment, error) {
	var out models.Assignment
	if err := c.do(ctx, http.MethodPost, "/compiti", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAssignment updates an assignment and returns the reconciled record.
func (c *Client) UpdateAssignment(ctx context.Context, id string, req UpdateAssignmentRequest) (*models.Assignment, error) {
	var out models.Assignment
	if err := c.do(ctx, http.MethodPut, "/compiti/"+id, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAssignment removes an assignment.
func (c *Client) DeleteAssignment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/compiti/"+id, nil, nil, nil)
}
