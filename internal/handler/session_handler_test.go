package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armonia-apps/msa-client-api/internal/models"
	"github.com/armonia-apps/msa-client-api/internal/session"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
)

type mockSessionStore struct {
	snap      session.Snapshot
	loginErr  error
	logouts   int
	refreshes int
}

func (m *mockSessionStore) Login(ctx context.Context, email, password string) error {
	if m.loginErr != nil {
		return m.loginErr
	}
	m.snap = session.Snapshot{
		State:       session.StateAuthenticated,
		User:        &models.User{ID: "u1", Role: models.RoleTeacher, Email: email},
		Initialized: true,
	}
	return nil
}

func (m *mockSessionStore) AdminPinVerify(ctx context.Context, email, pin string) (*models.AdminPinResponse, error) {
	return &models.AdminPinResponse{SessionID: "2fa-session"}, nil
}

func (m *mockSessionStore) AdminGoogleVerify(ctx context.Context, email, sessionID string) error {
	if m.loginErr != nil {
		return m.loginErr
	}
	m.snap = session.Snapshot{
		State:       session.StateAuthenticated,
		User:        &models.User{ID: "a1", Role: models.RoleAdmin, Email: email},
		Initialized: true,
	}
	return nil
}

func (m *mockSessionStore) Logout(ctx context.Context) {
	m.logouts++
	m.snap = session.Snapshot{State: session.StateAnonymous, Initialized: true}
}

func (m *mockSessionStore) Refresh(ctx context.Context) { m.refreshes++ }

func (m *mockSessionStore) Current() session.Snapshot { return m.snap }

func sessionRouter(store sessionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSessionHandler(store)
	r.GET("/session", h.Current)
	r.POST("/session/login", h.Login)
	r.POST("/session/admin/pin", h.AdminPin)
	r.POST("/session/admin/google", h.AdminGoogle)
	r.POST("/session/logout", h.Logout)
	r.POST("/session/refresh", h.Refresh)
	return r
}

func TestSessionLoginReturnsCapabilities(t *testing.T) {
	store := &mockSessionStore{snap: session.Snapshot{State: session.StateAnonymous, Initialized: true}}
	r := sessionRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/session/login",
		strings.NewReader(`{"email":"t@example.com","password":"secret1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data SessionView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, session.StateAuthenticated, body.Data.State)
	assert.NotEmpty(t, body.Data.Capabilities.Screens)
	assert.NotEmpty(t, body.Data.Capabilities.Actions)
}

func TestSessionLoginRequiresCredentials(t *testing.T) {
	store := &mockSessionStore{}
	r := sessionRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/session/login", strings.NewReader(`{"email":"t@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionLoginSurfacesUnreachable(t *testing.T) {
	store := &mockSessionStore{loginErr: appErrors.Clone(appErrors.ErrUnreachable, "the server is not responding, check your connection")}
	r := sessionRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/session/login",
		strings.NewReader(`{"email":"t@example.com","password":"secret1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "not responding")
}

func TestSessionCurrentBeforeLoginHasNoCapabilities(t *testing.T) {
	store := &mockSessionStore{snap: session.Snapshot{State: session.StateAnonymous, Initialized: true}}
	r := sessionRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/session", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data SessionView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Data.Capabilities.Actions)
	assert.True(t, body.Data.Initialized)
}

func TestAdminTwoFactorEndpoints(t *testing.T) {
	store := &mockSessionStore{snap: session.Snapshot{State: session.StateAnonymous, Initialized: true}}
	r := sessionRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/session/admin/pin",
		strings.NewReader(`{"email":"a@example.com","pin":"123456"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2fa-session")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/session/admin/google",
		strings.NewReader(`{"email":"a@example.com","session_id":"2fa-session"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data SessionView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, session.StateAuthenticated, body.Data.State)
	assert.Equal(t, models.RoleAdmin, body.Data.User.Role)
}

func TestAdminPinRequiresFields(t *testing.T) {
	store := &mockSessionStore{}
	r := sessionRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/session/admin/pin", strings.NewReader(`{"email":"a@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionLogoutAlwaysSucceeds(t *testing.T) {
	store := &mockSessionStore{snap: session.Snapshot{
		State:       session.StateAuthenticated,
		User:        &models.User{ID: "u1", Role: models.RoleStudent},
		Initialized: true,
	}}
	r := sessionRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/session/logout", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, store.logouts)
	assert.Contains(t, w.Body.String(), string(session.StateAnonymous))
}
