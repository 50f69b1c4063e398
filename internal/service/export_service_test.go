package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/armonia-apps/msa-client-api/internal/models"
	"github.com/armonia-apps/msa-client-api/pkg/config"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
)

type mockExportAPI struct {
	attendance []models.Attendance
	payments   []models.Payment
}

func (m *mockExportAPI) ListAttendance(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error) {
	return m.attendance, nil
}

func (m *mockExportAPI) ListPayments(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, error) {
	return m.payments, nil
}

func TestExportAttendanceCSV(t *testing.T) {
	api := &mockExportAPI{attendance: []models.Attendance{
		{StudentID: "s1", Date: "2026-03-01", Status: models.AttendancePresent},
		{StudentID: "s2", Date: "2026-03-01", Status: models.AttendanceAbsent, Notes: "influenza"},
	}}
	svc := NewExportService(api, config.ExportsConfig{Enabled: true}, zap.NewNop(), nil, nil)

	file, err := svc.Attendance(context.Background(), models.AttendanceFilter{}, FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "text/csv", file.ContentType)
	assert.True(t, strings.HasPrefix(file.Filename, "presenze_"))
	assert.True(t, strings.HasSuffix(file.Filename, ".csv"))

	body := string(file.Payload)
	assert.Contains(t, body, "Allievo,Data,Stato,Recupero,Note")
	assert.Contains(t, body, "s2,2026-03-01,assente,,influenza")
}

func TestExportPaymentsPDF(t *testing.T) {
	api := &mockExportAPI{payments: []models.Payment{
		{UserID: "s1", Type: models.PaymentMonthly, Amount: 80, Description: "Marzo", DueDate: "2026-03-10", Status: models.PaymentPending},
	}}
	svc := NewExportService(api, config.ExportsConfig{Enabled: true}, zap.NewNop(), nil, nil)

	file, err := svc.Payments(context.Background(), models.PaymentFilter{}, FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasPrefix(string(file.Payload), "%PDF"))
}

func TestExportDisabled(t *testing.T) {
	svc := NewExportService(&mockExportAPI{}, config.ExportsConfig{Enabled: false}, zap.NewNop(), nil, nil)

	_, err := svc.Attendance(context.Background(), models.AttendanceFilter{}, FormatCSV)
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrForbidden))
}

func TestExportUnknownFormat(t *testing.T) {
	svc := NewExportService(&mockExportAPI{}, config.ExportsConfig{Enabled: true}, zap.NewNop(), nil, nil)

	_, err := svc.Payments(context.Background(), models.PaymentFilter{}, ExportFormat("xlsx"))
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}
