package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/armonia-apps/msa-client-api/internal/gateway"
	"github.com/armonia-apps/msa-client-api/internal/models"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
)

type notificationAPI interface {
	ListNotifications(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, error)
	CreateNotification(ctx context.Context, req gateway.CreateNotificationRequest) (*models.Notification, error)
	UpdateNotification(ctx context.Context, id string, req gateway.UpdateNotificationRequest) (*models.Notification, error)
	DeleteNotification(ctx context.Context, id string) error
}

// CreateNotificationRequest is the payload for publishing a notification.
type CreateNotificationRequest struct {
	Title         string   `json:"titolo" validate:"required"`
	Message       string   `json:"messaggio" validate:"required"`
	Type          string   `json:"tipo" validate:"omitempty,oneof=generale pagamento lezione"`
	RecipientType string   `json:"destinatari_tipo" validate:"omitempty,oneof=tutti singoli"`
	RecipientIDs  []string `json:"destinatari_ids"`
	PaymentFilter string   `json:"filtro_pagamento"`
}

// UpdateNotificationRequest carries the mutable notification attributes.
type UpdateNotificationRequest struct {
	Title        *string  `json:"titolo,omitempty"`
	Message      *string  `json:"messaggio,omitempty"`
	Type         *string  `json:"tipo,omitempty" validate:"omitempty,oneof=generale pagamento lezione"`
	RecipientIDs []string `json:"destinatari_ids,omitempty"`
	Active       *bool    `json:"attivo,omitempty"`
}

// NotificationService manages announcements. Recipient visibility for
// non-admin readers is resolved server-side; non-admins additionally only
// ever request active notifications.
type NotificationService struct {
	api       notificationAPI
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNotificationService creates an instance of NotificationService.
func NewNotificationService(api notificationAPI, validate *validator.Validate, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &NotificationService{api: api, validator: validate, logger: logger}
}

// List returns notifications visible to the actor.
func (s *NotificationService) List(ctx context.Context, actor *models.User, filter models.NotificationFilter) ([]models.Notification, error) {
	if actor != nil && actor.Role != models.RoleAdmin {
		filter.ActiveOnly = true
	}
	return s.api.ListNotifications(ctx, filter)
}

// Create publishes a new notification.
func (s *NotificationService) Create(ctx context.Context, req CreateNotificationRequest) (*models.Notification, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid notification payload")
	}
	if req.RecipientType == string(models.RecipientsSpecific) && len(req.RecipientIDs) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "targeted notifications need at least one recipient")
	}
	return s.api.CreateNotification(ctx, gateway.CreateNotificationRequest{
		Title:         req.Title,
		Message:       req.Message,
		Type:          req.Type,
		RecipientType: req.RecipientType,
		RecipientIDs:  req.RecipientIDs,
		PaymentFilter: req.PaymentFilter,
	})
}

// Update updates a notification and returns the reconciled record.
func (s *NotificationService) Update(ctx context.Context, id string, req UpdateNotificationRequest) (*models.Notification, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid notification payload")
	}
	return s.api.UpdateNotification(ctx, id, gateway.UpdateNotificationRequest{
		Title:        req.Title,
		Message:      req.Message,
		Type:         req.Type,
		RecipientIDs: req.RecipientIDs,
		Active:       req.Active,
	})
}

// Delete removes a notification.
func (s *NotificationService) Delete(ctx context.Context, id string) error {
	return s.api.DeleteNotification(ctx, id)
}
