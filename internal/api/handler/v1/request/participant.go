package request

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/shopspring/decimal"
)

var (
	phoneExp = regexp.MustCompile(`^\+?[0-9 ()-]{6,20}$`)
	ageExp   = regexp.MustCompile(`^[0-9]{1,3}$`)
)

var (
	errNegativeAmount = errors.New("must be zero or greater")
	errNotAnAmount    = errors.New("must be a number")
)

type RegisterParticipantRequest struct {
	FullName    string           `json:"fullName"`
	Phone       string           `json:"phone"`
	Age         string           `json:"age"`
	Email       *string          `json:"email"`
	TotalAmount *decimal.Decimal `json:"totalAmount" swaggertype:"number"`
	PaidAmount  *decimal.Decimal `json:"paidAmount" swaggertype:"number"`
}

func (req *RegisterParticipantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FullName, validation.Required, validation.Length(1, 120)),
		validation.Field(&req.Phone, validation.Required, validation.Match(phoneExp)),
		validation.Field(&req.Age, validation.Required, validation.Match(ageExp)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.TotalAmount, validation.By(nonNegative)),
		validation.Field(&req.PaidAmount, validation.By(nonNegative)),
	)
}

// UpdateParticipantRequest is a partial update; omitted fields are kept.
// An empty email clears it. paymentStatus is not accepted.
type UpdateParticipantRequest struct {
	FullName    *string          `json:"fullName"`
	Phone       *string          `json:"phone"`
	Age         *string          `json:"age"`
	Email       *string          `json:"email"`
	TotalAmount *decimal.Decimal `json:"totalAmount" swaggertype:"number"`
	PaidAmount  *decimal.Decimal `json:"paidAmount" swaggertype:"number"`
	Version     int              `json:"version"`
}

func (req *UpdateParticipantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FullName, validation.NilOrNotEmpty, validation.Length(1, 120)),
		validation.Field(&req.Phone, validation.NilOrNotEmpty, validation.Match(phoneExp)),
		validation.Field(&req.Age, validation.NilOrNotEmpty, validation.Match(ageExp)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.TotalAmount, validation.By(nonNegative)),
		validation.Field(&req.PaidAmount, validation.By(nonNegative)),
		validation.Field(&req.Version, validation.Min(0)),
	)
}

func nonNegative(value interface{}) error {
	var d decimal.Decimal

	switch v := value.(type) {
	case decimal.Decimal:
		d = v
	case *decimal.Decimal:
		if v == nil {
			return nil
		}
		d = *v
	default:
		return errNotAnAmount
	}

	if d.IsNegative() {
		return errNegativeAmount
	}

	return nil
}
