package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/armonia-apps/msa-client-api/internal/models"
	"github.com/armonia-apps/msa-client-api/pkg/config"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
	"github.com/armonia-apps/msa-client-api/pkg/export"
)

type exportAPI interface {
	ListAttendance(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error)
	ListPayments(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, error)
}

type csvRenderer interface {
	Render(table export.Table) ([]byte, error)
}

type pdfRenderer interface {
	Render(table export.Table) ([]byte, error)
}

// ExportFormat selects the rendered output type.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// ExportFile is a rendered download ready to stream to the UI.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders attendance and payment lists as CSV or PDF
// downloads for the administrator.
type ExportService struct {
	api    exportAPI
	csv    csvRenderer
	pdf    pdfRenderer
	cfg    config.ExportsConfig
	logger *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(api exportAPI, cfg config.ExportsConfig, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{api: api, csv: csv, pdf: pdf, cfg: cfg, logger: logger}
}

// Attendance renders the attendance list matching the filter.
func (s *ExportService) Attendance(ctx context.Context, filter models.AttendanceFilter, format ExportFormat) (*ExportFile, error) {
	if err := s.check(format); err != nil {
		return nil, err
	}

	records, err := s.api.ListAttendance(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{rec.StudentID, rec.Date, string(rec.Status), rec.MakeupDate, rec.Notes})
	}
	table := export.Table{
		Title:   "Registro presenze",
		Columns: []string{"Allievo", "Data", "Stato", "Recupero", "Note"},
		Rows:    rows,
	}

	return s.render("presenze", table, format)
}

// Payments renders the payment list matching the filter.
func (s *ExportService) Payments(ctx context.Context, filter models.PaymentFilter, format ExportFormat) (*ExportFile, error) {
	if err := s.check(format); err != nil {
		return nil, err
	}

	records, err := s.api.ListPayments(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.UserID,
			string(rec.Type),
			fmt.Sprintf("%.2f", rec.Amount),
			rec.Description,
			rec.DueDate,
			string(rec.Status),
		})
	}
	table := export.Table{
		Title:   "Registro pagamenti",
		Columns: []string{"Utente", "Tipo", "Importo", "Descrizione", "Scadenza", "Stato"},
		Rows:    rows,
	}

	return s.render("pagamenti", table, format)
}

func (s *ExportService) check(format ExportFormat) error {
	if !s.cfg.Enabled {
		return appErrors.Clone(appErrors.ErrForbidden, "exports are disabled on this installation")
	}
	if format != FormatCSV && format != FormatPDF {
		return appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
	return nil
}

func (s *ExportService) render(prefix string, table export.Table, format ExportFormat) (*ExportFile, error) {
	var payload []byte
	var err error
	contentType := "text/csv"

	switch format {
	case FormatCSV:
		payload, err = s.csv.Render(table)
	case FormatPDF:
		payload, err = s.pdf.Render(table)
		contentType = "application/pdf"
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	stamp := time.Now().UTC().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s_%s.%s", prefix, stamp, uuid.NewString()[:8], format)

	s.logger.Info("export rendered",
		zap.String("file", filename),
		zap.Int("rows", len(table.Rows)),
	)
	return &ExportFile{Filename: filename, ContentType: contentType, Payload: payload}, nil
}
