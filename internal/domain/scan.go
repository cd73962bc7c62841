package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ResolvedVia string

const (
	ResolvedViaJSON ResolvedVia = "json"
	ResolvedViaURL  ResolvedVia = "url"
)

// ScanPayload is what could be read out of a decoded QR text before any
// lookup. Everything except ID is a display hint.
type ScanPayload struct {
	ID            string           `json:"id"`
	Name          string           `json:"name,omitempty"`
	PaymentStatus PaymentStatus    `json:"paymentStatus,omitempty"`
	TotalAmount   *decimal.Decimal `json:"totalAmount,omitempty"`
	PaidAmount    *decimal.Decimal `json:"paidAmount,omitempty"`
	ResolvedVia   ResolvedVia      `json:"resolvedVia"`
}

type ScanSession struct {
	ID            string
	ParticipantID string
	ScannedBy     string
	DeviceInfo    string
	ResolvedVia   ResolvedVia
	ScannedAt     time.Time
}

type ScanResult struct {
	Participant Participant
	Embedded    ScanPayload
	Session     ScanSession
}
