package gateway

import (
	"context"
	"net/http"

	"github.com/armonia-apps/msa-client-api/internal/models"
)

// Login exchanges credentials for a session token and the resolved identity.
// The call is issued without a bearer header when no token is held.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var out models.LoginResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminPinVerify runs step one of the admin two-factor flow.
func (c *Client) AdminPinVerify(ctx context.Context, email, pin string) (*models.AdminPinResponse, error) {
	var out models.AdminPinResponse
	req := models.AdminPinRequest{Email: email, PIN: pin}
	if err := c.do(ctx, http.MethodPost, "/auth/admin/pin", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminGoogleVerify completes the admin two-factor flow and returns the
// session token and identity like a plain login.
func (c *Client) AdminGoogleVerify(ctx context.Context, email, sessionID string) (*models.LoginResponse, error) {
	var out models.LoginResponse
	req := models.AdminGoogleRequest{Email: email, SessionID: sessionID}
	if err := c.do(ctx, http.MethodPost, "/auth/admin/google", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me resolves the identity behind the current token.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout notifies the backend that the session is over. Callers treat
// failures as non-fatal; local state is cleared regardless.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}
