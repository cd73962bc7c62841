package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ScanRequest struct {
	Text       string `json:"text"`
	ScannedBy  string `json:"scannedBy"`
	DeviceInfo string `json:"deviceInfo"`
}

func (req *ScanRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Text, validation.Required, validation.Length(1, 4096)),
		validation.Field(&req.ScannedBy, validation.Length(0, 64)),
		validation.Field(&req.DeviceInfo, validation.Length(0, 256)),
	)
}

type SendWhatsAppRequest struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Age      string `json:"age"`
}

func (req *SendWhatsAppRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ID, validation.Required),
		validation.Field(&req.FullName, validation.Required),
		validation.Field(&req.Phone, validation.Required, validation.Match(phoneExp)),
		validation.Field(&req.Age, validation.Required),
	)
}
