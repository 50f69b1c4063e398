package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/armonia-apps/msa-client-api/internal/models"
	"github.com/armonia-apps/msa-client-api/internal/service"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
	"github.com/armonia-apps/msa-client-api/pkg/response"
)

// AssignmentHandler wires homework to HTTP routes.
type AssignmentHandler struct {
	assignments *service.AssignmentService
}

// NewAssignmentHandler constructs a new AssignmentHandler.
func NewAssignmentHandler(assignments *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

// List godoc
// @Summary List assignments
// @Tags Assignments
// @Produce json
// @Param allievo_id query string false "Filter by student"
// @Param completato query bool false "Filter by completion"
// @Success 200 {object} response.Envelope
// @Router /assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	filter := models.AssignmentFilter{
		StudentID: c.Query("allievo_id"),
		Completed: boolQuery(c, "completato"),
	}
	assignments, err := h.assignments.List(c.Request.Context(), actorFromContext(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignments)
}

// Create assigns new homework.
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req service.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}
	assignment, err := h.assignments.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, assignment)
}

// Update updates an assignment (teacher/admin path).
func (h *AssignmentHandler) Update(c *gin.Context) {
	var req service.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}
	assignment, err := h.assignments.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignment)
}

// Complete godoc
// @Summary Mark an assignment completed or not
// @Tags Assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} response.Envelope
// @Router /assignments/{id}/complete [post]
func (h *AssignmentHandler) Complete(c *gin.Context) {
	var req struct {
		Completed *bool `json:"completato"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Completed == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "completato is required"))
		return
	}
	assignment, err := h.assignments.MarkCompleted(c.Request.Context(), c.Param("id"), *req.Completed)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignment)
}

// Delete removes an assignment.
func (h *AssignmentHandler) Delete(c *gin.Context) {
	if err := h.assignments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
