package models

import (
	"encoding/json"
	"time"
)

// NotificationType enumerates notification categories.
type NotificationType string

const (
	NotificationGeneral NotificationType = "generale"
	NotificationPayment NotificationType = "pagamento"
	NotificationLesson  NotificationType = "lezione"
)

// RecipientType selects between broadcast and targeted notifications.
type RecipientType string

const (
	RecipientsAll      RecipientType = "tutti"
	RecipientsSpecific RecipientType = "singoli"
)

// Notification is an announcement pushed by the admin to users.
type Notification struct {
	ID            string           `json:"id"`
	Title         string           `json:"titolo"`
	Message       string           `json:"messaggio"`
	Type          NotificationType `json:"tipo"`
	RecipientType RecipientType    `json:"destinatari_tipo,omitempty"`
	RecipientIDs  []string         `json:"destinatari_ids"`
	PaymentFilter string           `json:"filtro_pagamento,omitempty"`
	Active        bool             `json:"attivo"`
	CreatedAt     *time.Time       `json:"data_creazione,omitempty"`
}

// notificationAliases mirrors the field names older backend records still
// carry alongside (or instead of) the canonical ones.
type notificationAliases struct {
	ID        string     `json:"notification_id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Type      string     `json:"notification_type"`
	Recipient []string   `json:"recipient_ids"`
	Active    *bool      `json:"is_active"`
	CreatedAt *time.Time `json:"created_at"`
}

// UnmarshalJSON is the single point where legacy notification shapes are
// normalised into the canonical fields. Nothing downstream branches on
// which variant was present.
func (n *Notification) UnmarshalJSON(data []byte) error {
	type alias Notification
	aux := struct {
		*alias
		notificationAliases
	}{alias: (*alias)(n)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if n.ID == "" {
		n.ID = aux.notificationAliases.ID
	}
	if n.Title == "" {
		n.Title = aux.notificationAliases.Title
	}
	if n.Message == "" {
		n.Message = aux.notificationAliases.Message
	}
	if n.Type == "" && aux.notificationAliases.Type != "" {
		n.Type = NotificationType(aux.notificationAliases.Type)
	}
	if n.RecipientIDs == nil && aux.notificationAliases.Recipient != nil {
		n.RecipientIDs = aux.notificationAliases.Recipient
	}
	if !n.Active && aux.notificationAliases.Active != nil {
		n.Active = *aux.notificationAliases.Active
	}
	if n.CreatedAt == nil && aux.notificationAliases.CreatedAt != nil {
		n.CreatedAt = aux.notificationAliases.CreatedAt
	}
	return nil
}

// NotificationFilter captures filtering criteria for listing notifications.
type NotificationFilter struct {
	ActiveOnly bool
}
