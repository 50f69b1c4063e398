package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/armonia-apps/msa-client-api/internal/models"
	"github.com/armonia-apps/msa-client-api/internal/service"
	"github.com/armonia-apps/msa-client-api/pkg/response"
)

// ExportHandler streams rendered CSV/PDF downloads.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs a new ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Attendance godoc
// @Summary Export the attendance register
// @Tags Exports
// @Produce octet-stream
// @Param format query string false "csv or pdf (default csv)"
// @Param allievo_id query string false "Filter by student"
// @Param from_date query string false "From date (YYYY-MM-DD)"
// @Param to_date query string false "To date (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Router /exports/attendance [get]
func (h *ExportHandler) Attendance(c *gin.Context) {
	filter := models.AttendanceFilter{
		StudentID: c.Query("allievo_id"),
		FromDate:  c.Query("from_date"),
		ToDate:    c.Query("to_date"),
	}
	file, err := h.exports.Attendance(c.Request.Context(), filter, exportFormat(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveExport(c, file)
}

// Payments godoc
// @Summary Export the payment register
// @Tags Exports
// @Produce octet-stream
// @Param format query string false "csv or pdf (default csv)"
// @Param tipo query string false "Filter by type"
// @Param stato query string false "Filter by status"
// @Success 200 {file} binary
// @Router /exports/payments [get]
func (h *ExportHandler) Payments(c *gin.Context) {
	filter := models.PaymentFilter{
		UserID: c.Query("utente_id"),
		Type:   c.Query("tipo"),
		Status: c.Query("stato"),
	}
	file, err := h.exports.Payments(c.Request.Context(), filter, exportFormat(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveExport(c, file)
}

func exportFormat(c *gin.Context) service.ExportFormat {
	return service.ExportFormat(c.DefaultQuery("format", "csv"))
}

func serveExport(c *gin.Context, file *service.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Payload)
}
