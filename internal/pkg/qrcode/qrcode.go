// Package qrcode turns participant payloads into QR images and back.
package qrcode

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/makiuchi-d/gozxing"
	zxingqr "github.com/makiuchi-d/gozxing/qrcode"
	goqrcode "github.com/skip2/go-qrcode"

	"github.com/vietanh2810/eventpass-api/internal/domain"
)

const (
	Size          = 256
	dataURLPrefix = "data:image/png;base64,"
)

var (
	ErrNoCode       = errors.New("no QR code found in image")
	ErrInvalidImage = errors.New("not a QR data URL")
)

// Encode renders the payload JSON into a PNG.
func Encode(payload domain.QRPayload) ([]byte, error) {
	text, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal -> %w", err)
	}

	png, err := goqrcode.Encode(string(text), goqrcode.Medium, Size)
	if err != nil {
		return nil, fmt.Errorf("goqrcode.Encode -> %w", err)
	}

	return png, nil
}

// EncodeDataURL is Encode wrapped as a data URL ready to store on the participant.
func EncodeDataURL(payload domain.QRPayload) (string, error) {
	png, err := Encode(payload)
	if err != nil {
		return "", err
	}

	return DataURL(png), nil
}

func DataURL(png []byte) string {
	return dataURLPrefix + base64.StdEncoding.EncodeToString(png)
}

// PNGFromDataURL reverses DataURL.
func PNGFromDataURL(dataURL string) ([]byte, error) {
	if !strings.HasPrefix(dataURL, dataURLPrefix) {
		return nil, ErrInvalidImage
	}

	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, dataURLPrefix))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	return png, nil
}

// Decode reads the text of the first QR code found in img.
func Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("gozxing.NewBinaryBitmapFromImage -> %w", err)
	}

	result, err := zxingqr.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoCode, err)
	}

	return result.GetText(), nil
}

// DecodeReader decodes a PNG or JPEG stream.
func DecodeReader(r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("image.Decode -> %w", err)
	}

	return Decode(img)
}

// DecodeBytes is DecodeReader over an in-memory image.
func DecodeBytes(b []byte) (string, error) {
	return DecodeReader(bytes.NewReader(b))
}
