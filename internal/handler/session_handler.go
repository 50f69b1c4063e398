package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/armonia-apps/msa-client-api/internal/capability"
	"github.com/armonia-apps/msa-client-api/internal/models"
	"github.com/armonia-apps/msa-client-api/internal/session"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
	"github.com/armonia-apps/msa-client-api/pkg/response"
)

type sessionStore interface {
	Login(ctx context.Context, email, password string) error
	AdminPinVerify(ctx context.Context, email, pin string) (*models.AdminPinResponse, error)
	AdminGoogleVerify(ctx context.Context, email, sessionID string) error
	Logout(ctx context.Context)
	Refresh(ctx context.Context)
	Current() session.Snapshot
}

// SessionView is the session payload handed to the UI shell: the snapshot
// plus the capability set the shell uses to build its navigation.
type SessionView struct {
	State        session.State  `json:"state"`
	User         *models.User   `json:"user,omitempty"`
	Initialized  bool           `json:"initialized"`
	Capabilities capability.Set `json:"capabilities"`
}

// SessionHandler exposes the device session over HTTP.
type SessionHandler struct {
	store sessionStore
}

// NewSessionHandler constructs the handler.
func NewSessionHandler(store sessionStore) *SessionHandler {
	return &SessionHandler{store: store}
}

func (h *SessionHandler) view() SessionView {
	snap := h.store.Current()
	view := SessionView{
		State:       snap.State,
		User:        snap.User,
		Initialized: snap.Initialized,
	}
	if snap.Authenticated() {
		view.Capabilities = capability.ForRole(snap.User.Role)
	}
	return view
}

// Current godoc
// @Summary Session snapshot and capability set
// @Tags Session
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /session [get]
func (h *SessionHandler) Current(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.view())
}

// Login godoc
// @Summary Authenticate with the school backend
// @Tags Session
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Router /session/login [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}
	if req.Email == "" || req.Password == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "email and password are required"))
		return
	}

	if err := h.store.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, h.view())
}

// AdminPin runs step one of the admin two-factor login.
func (h *SessionHandler) AdminPin(c *gin.Context) {
	var req models.AdminPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid pin payload"))
		return
	}
	if req.Email == "" || req.PIN == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "email and pin are required"))
		return
	}

	resp, err := h.store.AdminPinVerify(c.Request.Context(), req.Email, req.PIN)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

// AdminGoogle completes the admin two-factor login and returns the session
// view like a plain login.
func (h *SessionHandler) AdminGoogle(c *gin.Context) {
	var req models.AdminGoogleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid verification payload"))
		return
	}
	if req.Email == "" || req.SessionID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "email and session_id are required"))
		return
	}

	if err := h.store.AdminGoogleVerify(c.Request.Context(), req.Email, req.SessionID); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, h.view())
}

// Logout godoc
// @Summary End the session
// @Tags Session
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /session/logout [post]
func (h *SessionHandler) Logout(c *gin.Context) {
	h.store.Logout(c.Request.Context())
	response.JSON(c, http.StatusOK, h.view())
}

// Refresh godoc
// @Summary Re-validate the stored session against the backend
// @Tags Session
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /session/refresh [post]
func (h *SessionHandler) Refresh(c *gin.Context) {
	h.store.Refresh(c.Request.Context())
	response.JSON(c, http.StatusOK, h.view())
}
