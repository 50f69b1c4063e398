package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/armonia-apps/msa-client-api/internal/models"
)

// CreatePaymentRequest is the payload for creating a payment record.
type CreatePaymentRequest struct {
	UserID      string  `json:"utente_id"`
	Type        string  `json:"tipo"`
	Amount      float64 `json:"importo"`
	Description string  `json:"descrizione"`
	DueDate     string  `json:"data_scadenza"`
}

// UpdatePaymentRequest carries the mutable payment attributes. Setting the
// status to paid stamps the payment date server-side.
type UpdatePaymentRequest struct {
	Amount        *float64 `json:"importo,omitempty"`
	Description   *string  `json:"descrizione,omitempty"`
	DueDate       *string  `json:"data_scadenza,omitempty"`
	Status        *string  `json:"stato,omitempty"`
	VisibleToUser *bool    `json:"visibile_utente,omitempty"`
}

// ListPayments fetches payments matching the filter. Non-admin callers are
// scoped to their own visible payments server-side.
func (c *Client) ListPayments(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, error) {
	q := url.Values{}
	setIfPresent(q, "utente_id", filter.UserID)
	setIfPresent(q, "tipo", filter.Type)
	setIfPresent(q, "stato", filter.Status)

	var out []models.Payment
	if err := c.do(ctx, http.MethodGet, "/pagamenti", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePayment creates a new payment record.
func (c *Client) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*models.Payment, error) {
	var out models.Payment
	if err := c.do(ctx, http.MethodPost, "/pagamenti", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePayment updates a payment and returns the reconciled record.
func (c *Client) UpdatePayment(ctx context.Context, id string, req UpdatePaymentRequest) (*models.Payment, error) {
	var out models.Payment
	if err := c.do(ctx, http.MethodPut, "/pagamenti/"+id, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePayment removes a payment record.
func (c *Client) DeletePayment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/pagamenti/"+id, nil, nil, nil)
}
