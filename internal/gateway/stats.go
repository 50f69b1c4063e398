package gateway

import (
	"context"
	"net/http"

	"github.com/armonia-apps/msa-client-api/internal/models"
)

// AdminStats fetches the administrator dashboard counters.
func (c *Client) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var out models.AdminStats
	if err := c.do(ctx, http.MethodGet, "/stats/admin", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSettings fetches the school-wide payment defaults.
func (c *Client) GetSettings(ctx context.Context) (*models.Settings, error) {
	var out models.Settings
	if err := c.do(ctx, http.MethodGet, "/impostazioni", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSettings updates the school-wide payment defaults.
func (c *Client) UpdateSettings(ctx context.Context, settings models.Settings) (*models.Settings, error) {
	var out models.Settings
	if err := c.do(ctx, http.MethodPut, "/impostazioni", nil, settings, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Seed asks the backend to run its idempotent demo-data bootstrap. It is an
// explicit admin action and is never invoked automatically.
func (c *Client) Seed(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/seed", nil, nil, nil)
}
