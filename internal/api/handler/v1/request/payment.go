package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

type PaymentUpdateRequest struct {
	ParticipantID string           `json:"participantId"`
	PaidAmount    *decimal.Decimal `json:"paidAmount" swaggertype:"number"`
	TotalAmount   *decimal.Decimal `json:"totalAmount" swaggertype:"number"`
	PaymentStatus string           `json:"paymentStatus"`
	UpdatedBy     string           `json:"updatedBy"`
	Timestamp     *time.Time       `json:"timestamp"`
	Version       int              `json:"version"`
}

func (req *PaymentUpdateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ParticipantID, validation.Required),
		validation.Field(&req.PaidAmount, validation.Required, validation.By(nonNegative)),
		validation.Field(&req.TotalAmount, validation.Required, validation.By(nonNegative)),
		validation.Field(&req.PaymentStatus, validation.In("paid", "partial", "unpaid")),
		validation.Field(&req.UpdatedBy, validation.Length(0, 64)),
		validation.Field(&req.Version, validation.Min(0)),
	)
}
