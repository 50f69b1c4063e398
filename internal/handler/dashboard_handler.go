package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/armonia-apps/msa-client-api/internal/models"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
	"github.com/armonia-apps/msa-client-api/pkg/response"
)

type dashboardService interface {
	ForUser(ctx context.Context, actor *models.User) (interface{}, error)
}

// DashboardHandler serves the role-specific landing screen.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Show godoc
// @Summary Role-specific dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Show(c *gin.Context) {
	actor := actorFromContext(c)
	if actor == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	dashboard, err := h.service.ForUser(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dashboard)
}
