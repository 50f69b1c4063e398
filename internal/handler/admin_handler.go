package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/armonia-apps/msa-client-api/internal/service"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
	"github.com/armonia-apps/msa-client-api/pkg/response"
)

// AdminHandler wires the administrator-only surface to HTTP routes.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs a new AdminHandler.
func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Stats godoc
// @Summary Administrator counters
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}

// Settings returns the school-wide payment defaults.
func (h *AdminHandler) Settings(c *gin.Context) {
	settings, err := h.admin.Settings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings)
}

// UpdateSettings stores the school-wide payment defaults.
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req service.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid settings payload"))
		return
	}
	settings, err := h.admin.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings)
}

// Seed godoc
// @Summary Run the backend demo-data bootstrap
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /seed [post]
func (h *AdminHandler) Seed(c *gin.Context) {
	if err := h.admin.Seed(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"status": "seeded"})
}
