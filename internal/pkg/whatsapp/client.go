// Package whatsapp posts participant details to the external webhook that
// renders and delivers the QR code over WhatsApp.
package whatsapp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const maxUpstreamBody = 4 << 10

var ErrUpstreamFailure = errors.New("whatsapp webhook failed")

// UpstreamError carries the webhook's status and response text.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("webhook responded %d", e.StatusCode)
	}
	return e.Body
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstreamFailure
}

type Message struct {
	ParticipantID string
	FullName      string
	Phone         string
	Age           string
}

type Client struct {
	webhookURL string
	httpClient *http.Client
}

func NewClient(webhookURL string, timeout time.Duration) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Send makes a single attempt; failures are returned, never retried.
func (c *Client) Send(ctx context.Context, msg Message) error {
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	fields := [][2]string{
		{"id_participant", msg.ParticipantID},
		{"full_name", msg.FullName},
		{"phone_number", msg.Phone},
		{"age", msg.Age},
	}
	for _, f := range fields {
		if err := form.WriteField(f[0], f[1]); err != nil {
			return fmt.Errorf("form.WriteField -> %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("form.Close -> %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, body)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	text, _ := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		zap.L().Warn("whatsapp webhook rejected message",
			zap.String("participant_id", msg.ParticipantID),
			zap.Int("status", resp.StatusCode))

		return &UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(text)),
		}
	}

	return nil
}
