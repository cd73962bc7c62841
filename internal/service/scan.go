package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vietanh2810/eventpass-api/internal/domain"
)

var ErrUnrecognizedFormat = errors.New("unrecognized QR format")

var qrDisplayPattern = regexp.MustCompile(`/qr-display/([a-zA-Z0-9_-]+)`)

type ScanSessionRepository interface {
	Create(ctx context.Context, s domain.ScanSession) (domain.ScanSession, error)
}

// ParseScan extracts the participant id from decoded QR text. A JSON object
// with a non-empty string id wins; otherwise the first /qr-display/<id> path
// segment is used.
func ParseScan(text string) (domain.ScanPayload, error) {
	text = strings.TrimSpace(text)

	if payload, ok := parseJSONPayload(text); ok {
		return payload, nil
	}

	if m := qrDisplayPattern.FindStringSubmatch(text); m != nil {
		return domain.ScanPayload{ID: m[1], ResolvedVia: domain.ResolvedViaURL}, nil
	}

	return domain.ScanPayload{}, ErrUnrecognizedFormat
}

func parseJSONPayload(text string) (domain.ScanPayload, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return domain.ScanPayload{}, false
	}

	var id string
	if err := json.Unmarshal(fields["id"], &id); err != nil || strings.TrimSpace(id) == "" {
		return domain.ScanPayload{}, false
	}

	payload := domain.ScanPayload{ID: id, ResolvedVia: domain.ResolvedViaJSON}

	// the rest are hints; malformed ones are dropped
	var name string
	if json.Unmarshal(fields["name"], &name) == nil {
		payload.Name = name
	}
	var status domain.PaymentStatus
	if json.Unmarshal(fields["paymentStatus"], &status) == nil && status.Valid() {
		payload.PaymentStatus = status
	}
	payload.TotalAmount = decimalHint(fields["totalAmount"])
	payload.PaidAmount = decimalHint(fields["paidAmount"])

	return payload, true
}

func decimalHint(raw json.RawMessage) *decimal.Decimal {
	if len(raw) == 0 {
		return nil
	}

	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return nil
	}

	return &d
}

type ScanService struct {
	participants ParticipantRepository
	sessions     ScanSessionRepository
	publisher    Publisher
}

func NewScanService(participants ParticipantRepository, sessions ScanSessionRepository, publisher Publisher) *ScanService {
	return &ScanService{
		participants: participants,
		sessions:     sessions,
		publisher:    publisherOrNop(publisher),
	}
}

// Resolve turns decoded QR text into the live participant record. Embedded
// data is returned as-is for display but never trusted for amounts or status.
func (s *ScanService) Resolve(ctx context.Context, text, scannedBy, deviceInfo string) (domain.ScanResult, error) {
	payload, err := ParseScan(text)
	if err != nil {
		return domain.ScanResult{}, err
	}

	p, err := s.participants.FindByID(ctx, payload.ID)
	if err != nil {
		return domain.ScanResult{}, fmt.Errorf("s.participants.FindByID -> %w", err)
	}

	session, err := s.sessions.Create(ctx, domain.ScanSession{
		ParticipantID: p.ID,
		ScannedBy:     scannedBy,
		DeviceInfo:    deviceInfo,
		ResolvedVia:   payload.ResolvedVia,
		ScannedAt:     time.Now().UTC(),
	})
	if err != nil {
		// a missing audit row must not keep someone out at the door
		zap.L().Warn("failed to record scan session", zap.String("participant_id", p.ID), zap.Error(err))
	}

	s.publisher.Publish(domain.LiveEvent{
		Type:          domain.EventParticipantScanned,
		ParticipantID: p.ID,
		Participant:   &p,
		At:            time.Now().UTC(),
	})

	return domain.ScanResult{
		Participant: p,
		Embedded:    payload,
		Session:     session,
	}, nil
}
