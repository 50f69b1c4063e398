package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/armonia-apps/msa-client-api/internal/gateway"
	"github.com/armonia-apps/msa-client-api/internal/models"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
)

type paymentAPI interface {
	ListPayments(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, error)
	CreatePayment(ctx context.Context, req gateway.CreatePaymentRequest) (*models.Payment, error)
	UpdatePayment(ctx context.Context, id string, req gateway.UpdatePaymentRequest) (*models.Payment, error)
	DeletePayment(ctx context.Context, id string) error
}

// CreatePaymentRequest is the payload for creating a payment record.
type CreatePaymentRequest struct {
	UserID      string  `json:"utente_id" validate:"required"`
	Type        string  `json:"tipo" validate:"required,oneof=mensile annuale compenso_insegnante"`
	Amount      float64 `json:"importo" validate:"required,gt=0"`
	Description string  `json:"descrizione" validate:"required"`
	DueDate     string  `json:"data_scadenza" validate:"required,datetime=2006-01-02"`
}

// UpdatePaymentRequest carries the mutable payment attributes.
type UpdatePaymentRequest struct {
	Amount        *float64 `json:"importo,omitempty" validate:"omitempty,gt=0"`
	Description   *string  `json:"descrizione,omitempty"`
	DueDate       *string  `json:"data_scadenza,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status        *string  `json:"stato,omitempty" validate:"omitempty,oneof=in_attesa pagato scaduto"`
	VisibleToUser *bool    `json:"visibile_utente,omitempty"`
}

// PaymentService manages fees and teacher compensation records. Non-admin
// callers are pinned to their own visible payments before the request goes
// out; only admin may create or mutate records.
type PaymentService struct {
	api       paymentAPI
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPaymentService creates an instance of PaymentService.
func NewPaymentService(api paymentAPI, validate *validator.Validate, logger *zap.Logger) *PaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &PaymentService{api: api, validator: validate, logger: logger}
}

// List returns payments matching the filter, scoped to the actor.
func (s *PaymentService) List(ctx context.Context, actor *models.User, filter models.PaymentFilter) ([]models.Payment, error) {
	if actor != nil && actor.Role != models.RoleAdmin {
		filter.UserID = actor.ID
	}
	return s.api.ListPayments(ctx, filter)
}

// Create creates a new payment record.
func (s *PaymentService) Create(ctx context.Context, req CreatePaymentRequest) (*models.Payment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payment payload")
	}
	return s.api.CreatePayment(ctx, gateway.CreatePaymentRequest{
		UserID:      req.UserID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
}

// Update updates a payment and returns the reconciled record. Marking a
// payment paid stamps the payment date server-side.
func (s *PaymentService) Update(ctx context.Context, id string, req UpdatePaymentRequest) (*models.Payment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payment payload")
	}
	return s.api.UpdatePayment(ctx, id, gateway.UpdatePaymentRequest{
		Amount:        req.Amount,
		Description:   req.Description,
		DueDate:       req.DueDate,
		Status:        req.Status,
		VisibleToUser: req.VisibleToUser,
	})
}

// Delete removes a payment record.
func (s *PaymentService) Delete(ctx context.Context, id string) error {
	return s.api.DeletePayment(ctx, id)
}
