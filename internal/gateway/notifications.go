package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/armonia-apps/msa-client-api/internal/models"
)

// CreateNotificationRequest is the payload for publishing a notification.
type CreateNotificationRequest struct {
	Title         string   `json:"titolo"`
	Message       string   `json:"messaggio"`
	Type          string   `json:"tipo,omitempty"`
	RecipientType string   `json:"destinatari_tipo,omitempty"`
	RecipientIDs  []string `json:"destinatari_ids,omitempty"`
	PaymentFilter string   `json:"filtro_pagamento,omitempty"`
}

// UpdateNotificationRequest carries the mutable notification attributes.
type UpdateNotificationRequest struct {
	Title        *string  `json:"titolo,omitempty"`
	Message      *string  `json:"messaggio,omitempty"`
	Type         *string  `json:"tipo,omitempty"`
	RecipientIDs []string `json:"destinatari_ids,omitempty"`
	Active       *bool    `json:"attivo,omitempty"`
}

// ListNotifications fetches notifications visible to the caller. Recipient
// scoping for non-admin users happens server-side.
func (c *Client) ListNotifications(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, error) {
	q := url.Values{}
	if filter.ActiveOnly {
		q.Set("attivo_only", "true")
	} else {
		q.Set("attivo_only", "false")
	}

	var out []models.Notification
	if err := c.do(ctx, http.MethodGet, "/notifiche", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateNotification publishes a new notification.
func (c *Client) CreateNotification(ctx context.Context, req CreateNotificationRequest) (*models.Notification, error) {
	var out models.Notification
	if err := c.do(ctx, http.MethodPost, "/notifiche", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateNotification updates a notification and returns the reconciled record.
func (c *Client) UpdateNotification(ctx context.Context, id string, req UpdateNotificationRequest) (*models.Notification, error) {
	var out models.Notification
	if err := c.do(ctx, http.MethodPut, "/notifiche/"+id, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteNotification removes a notification.
func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/notifiche/"+id, nil, nil, nil)
}
