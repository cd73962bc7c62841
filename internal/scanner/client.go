package scanner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrRejected wraps every non-200 answer from the scan endpoint.
var ErrRejected = errors.New("scan rejected")

type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	return e.Message
}

func (e *RejectedError) Unwrap() error {
	return ErrRejected
}

// APIResolver posts decoded text to POST {baseURL}/scans.
type APIResolver struct {
	baseURL    string
	locale     string
	scannedBy  string
	deviceInfo string
	http       *http.Client
}

func NewAPIResolver(baseURL, locale, scannedBy, deviceInfo string, timeout time.Duration) *APIResolver {
	return &APIResolver{
		baseURL:    strings.TrimRight(baseURL, "/"),
		locale:     locale,
		scannedBy:  scannedBy,
		deviceInfo: deviceInfo,
		http:       &http.Client{Timeout: timeout},
	}
}

type scanRequest struct {
	Text       string `json:"text"`
	ScannedBy  string `json:"scannedBy,omitempty"`
	DeviceInfo string `json:"deviceInfo,omitempty"`
}

type scanResponse struct {
	Participant struct {
		ID            string          `json:"id"`
		FullName      string          `json:"fullName"`
		PaymentStatus string          `json:"paymentStatus"`
		TotalAmount   decimal.Decimal `json:"totalAmount"`
		PaidAmount    decimal.Decimal `json:"paidAmount"`
		PendingAmount decimal.Decimal `json:"pendingAmount"`
	} `json:"participant"`
	ResolvedVia string `json:"resolvedVia"`
	StatusLabel string `json:"statusLabel"`
	Message     string `json:"message"`
}

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func (r *APIResolver) Resolve(ctx context.Context, text string) (Resolution, error) {
	body, err := json.Marshal(scanRequest{Text: text, ScannedBy: r.scannedBy, DeviceInfo: r.deviceInfo})
	if err != nil {
		return Resolution{}, fmt.Errorf("json.Marshal -> %w", err)
	}

	endpoint := r.baseURL + "/scans"
	if r.locale != "" {
		endpoint += "?lang=" + url.QueryEscape(r.locale)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Resolution{}, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return Resolution{}, fmt.Errorf("r.http.Do -> %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Resolution{}, fmt.Errorf("io.ReadAll -> %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		msg := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &e) == nil && e.Error != "" {
			msg = e.Error
		}
		if msg == "" {
			msg = resp.Status
		}
		return Resolution{}, &RejectedError{StatusCode: resp.StatusCode, Message: msg}
	}

	var out scanResponse
	if err = json.Unmarshal(raw, &out); err != nil {
		return Resolution{}, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return Resolution{
		ParticipantID: out.Participant.ID,
		FullName:      out.Participant.FullName,
		PaymentStatus: out.Participant.PaymentStatus,
		StatusLabel:   out.StatusLabel,
		Message:       out.Message,
		TotalAmount:   out.Participant.TotalAmount,
		PaidAmount:    out.Participant.PaidAmount,
		PendingAmount: out.Participant.PendingAmount,
		ResolvedVia:   out.ResolvedVia,
	}, nil
}
