package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentUpdate is the intent sent by the dashboard. Its PaymentStatus is
// informational only; the service reclassifies from the amounts.
type PaymentUpdate struct {
	ParticipantID string
	PaidAmount    decimal.Decimal
	TotalAmount   decimal.Decimal
	PaymentStatus PaymentStatus
	UpdatedBy     string
	Timestamp     time.Time
	Version       int
}

// PaymentHistoryEntry is one immutable row of the audit ledger.
type PaymentHistoryEntry struct {
	ID                  string          `json:"id"`
	ParticipantID       string          `json:"participantId"`
	PreviousPaidAmount  decimal.Decimal `json:"previousPaidAmount"`
	NewPaidAmount       decimal.Decimal `json:"newPaidAmount"`
	PreviousTotalAmount decimal.Decimal `json:"previousTotalAmount"`
	NewTotalAmount      decimal.Decimal `json:"newTotalAmount"`
	PreviousStatus      PaymentStatus   `json:"previousStatus"`
	NewStatus           PaymentStatus   `json:"newStatus"`
	UpdatedBy           string          `json:"updatedBy"`
	CreatedAt           time.Time       `json:"timestamp"`
}

func NewPaymentHistoryEntry(before, after Participant, actor string) PaymentHistoryEntry {
	return PaymentHistoryEntry{
		ParticipantID:       after.ID,
		PreviousPaidAmount:  before.PaidAmount,
		NewPaidAmount:       after.PaidAmount,
		PreviousTotalAmount: before.TotalAmount,
		NewTotalAmount:      after.TotalAmount,
		PreviousStatus:      before.PaymentStatus,
		NewStatus:           after.PaymentStatus,
		UpdatedBy:           actor,
	}
}
