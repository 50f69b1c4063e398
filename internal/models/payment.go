package models

import "time"

// PaymentStatus enumerates the backend's payment states.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "in_attesa"
	PaymentPaid    PaymentStatus = "pagato"
	PaymentOverdue PaymentStatus = "scaduto"
)

// PaymentType enumerates payment categories.
type PaymentType string

const (
	PaymentMonthly             PaymentType = "mensile"
	PaymentAnnual              PaymentType = "annuale"
	PaymentTeacherCompensation PaymentType = "compenso_insegnante"
)

// Payment is a fee owed by (or compensation owed to) a user.
type Payment struct {
	ID            string        `json:"id"`
	UserID        string        `json:"utente_id"`
	Type          PaymentType   `json:"tipo"`
	Amount        float64       `json:"importo"`
	Description   string        `json:"descrizione"`
	DueDate       string        `json:"data_scadenza"`
	Status        PaymentStatus `json:"stato"`
	PaidAt        *time.Time    `json:"data_pagamento,omitempty"`
	ValidFrom     string        `json:"data_inizio_validita,omitempty"`
	ValidTo       string        `json:"data_fine_validita,omitempty"`
	GraceDays     int           `json:"tolleranza_giorni,omitempty"`
	VisibleToUser bool          `json:"visibile_utente"`
	CreatedAt     *time.Time    `json:"data_creazione,omitempty"`
}

// PaymentFilter captures filtering criteria for listing payments.
type PaymentFilter struct {
	UserID string
	Type   string
	Status string
}
