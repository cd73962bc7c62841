package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts travel as plain JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPartial PaymentStatus = "partial"
	PaymentUnpaid  PaymentStatus = "unpaid"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPaid, PaymentPartial, PaymentUnpaid:
		return true
	}
	return false
}

// Classify derives the payment status from the amounts. It is the only place
// a status is ever produced.
func Classify(paid, total decimal.Decimal) PaymentStatus {
	switch {
	case paid.GreaterThanOrEqual(total):
		return PaymentPaid
	case !paid.IsPositive():
		return PaymentUnpaid
	default:
		return PaymentPartial
	}
}

type Participant struct {
	ID            string          `json:"id"`
	FullName      string          `json:"fullName"`
	Phone         string          `json:"phone"`
	Age           string          `json:"age"`
	Email         *string         `json:"email"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	QRCode        string          `json:"qrCode"`
	CreatedBy     string          `json:"-"`
	UpdatedBy     string          `json:"-"`
	RegisteredAt  time.Time       `json:"registeredAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	Version       int             `json:"version"`
}

// PendingAmount is what is still owed, never negative.
func (p Participant) PendingAmount() decimal.Decimal {
	pending := p.TotalAmount.Sub(p.PaidAmount)
	if pending.IsNegative() {
		return decimal.Zero
	}
	return pending
}

// SetAmounts is the only mutator for the financial fields, so the status
// cannot drift from them.
func (p *Participant) SetAmounts(paid, total decimal.Decimal) {
	p.PaidAmount = paid
	p.TotalAmount = total
	p.PaymentStatus = Classify(paid, total)
}

// QRPayload is what gets embedded in the participant's code. Amounts are left
// out on purpose; scanners read them from the live record.
type QRPayload struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}

func (p Participant) QRPayload() QRPayload {
	return QRPayload{
		ID:            p.ID,
		Name:          p.FullName,
		PaymentStatus: p.PaymentStatus,
	}
}

// ParticipantPatch carries an admin edit. Nil fields are left untouched.
type ParticipantPatch struct {
	FullName    *string
	Phone       *string
	Age         *string
	Email       *string
	ClearEmail  bool
	TotalAmount *decimal.Decimal
	PaidAmount  *decimal.Decimal
	Version     int
}

func (p ParticipantPatch) TouchesAmounts() bool {
	return p.TotalAmount != nil || p.PaidAmount != nil
}
