package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/armonia-apps/msa-client-api/internal/models"
	"github.com/armonia-apps/msa-client-api/pkg/config"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
)

type adminAPI interface {
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, settings models.Settings) (*models.Settings, error)
	Seed(ctx context.Context) error
}

// UpdateSettingsRequest carries the school-wide payment defaults.
type UpdateSettingsRequest struct {
	PaymentDueDay       int     `json:"payment_due_day" validate:"required,gte=1,lte=28"`
	PaymentToleranceDay int     `json:"payment_tolerance_days" validate:"gte=0,lte=30"`
	DefaultMonthlyFee   float64 `json:"default_monthly_fee" validate:"gte=0"`
	AnnualReminderDays  int     `json:"annual_reminder_days" validate:"gte=0,lte=90"`
}

// AdminService covers the administrator-only surface: the stats summary,
// school-wide settings and the explicit demo-data seed.
type AdminService struct {
	api       adminAPI
	seedCfg   config.SeedConfig
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAdminService creates an instance of AdminService.
func NewAdminService(api adminAPI, seedCfg config.SeedConfig, validate *validator.Validate, logger *zap.Logger) *AdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AdminService{api: api, seedCfg: seedCfg, validator: validate, logger: logger}
}

// Stats fetches the administrator dashboard counters.
func (s *AdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	return s.api.AdminStats(ctx)
}

// Settings fetches the school-wide payment defaults.
func (s *AdminService) Settings(ctx context.Context) (*models.Settings, error) {
	return s.api.GetSettings(ctx)
}

// UpdateSettings validates and stores the school-wide payment defaults.
func (s *AdminService) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*models.Settings, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid settings payload")
	}
	return s.api.UpdateSettings(ctx, models.Settings{
		PaymentDueDay:       req.PaymentDueDay,
		PaymentToleranceDay: req.PaymentToleranceDay,
		DefaultMonthlyFee:   req.DefaultMonthlyFee,
		AnnualReminderDays:  req.AnnualReminderDays,
	})
}

// Seed triggers the backend's idempotent demo-data bootstrap. It is an
// explicit admin action behind a config switch and never runs at startup.
func (s *AdminService) Seed(ctx context.Context) error {
	if !s.seedCfg.Enabled {
		return appErrors.Clone(appErrors.ErrForbidden, "seeding is disabled on this installation")
	}
	s.logger.Info("running backend seed")
	return s.api.Seed(ctx)
}
