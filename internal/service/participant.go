package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vietanh2810/eventpass-api/internal/domain"
	"github.com/vietanh2810/eventpass-api/internal/pkg/qrcode"
)

const registrationActor = "registration"

type ParticipantRepository interface {
	Create(ctx context.Context, p domain.Participant) (domain.Participant, error)
	FindByID(ctx context.Context, id string) (domain.Participant, error)
	FindAll(ctx context.Context) ([]domain.Participant, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, p domain.Participant, expectedVersion int) (domain.Participant, error)
	UpdateWithHistory(ctx context.Context, p domain.Participant, expectedVersion int, entry domain.PaymentHistoryEntry) (domain.Participant, error)
	Delete(ctx context.Context, id string) error
	FindPaymentHistory(ctx context.Context, participantID string) ([]domain.PaymentHistoryEntry, error)
}

// Registration is what a participant submits. Missing amounts fall back to
// the configured total and zero paid.
type Registration struct {
	FullName    string
	Phone       string
	Age         string
	Email       *string
	TotalAmount *decimal.Decimal
	PaidAmount  *decimal.Decimal
}

type ParticipantService struct {
	repo         ParticipantRepository
	publisher    Publisher
	defaultTotal decimal.Decimal
}

func NewParticipantService(repo ParticipantRepository, publisher Publisher, defaultTotal decimal.Decimal) *ParticipantService {
	return &ParticipantService{
		repo:         repo,
		publisher:    publisherOrNop(publisher),
		defaultTotal: defaultTotal,
	}
}

func (s *ParticipantService) Register(ctx context.Context, reg Registration) (domain.Participant, error) {
	total := s.defaultTotal
	if reg.TotalAmount != nil {
		total = *reg.TotalAmount
	}
	paid := decimal.Zero
	if reg.PaidAmount != nil {
		paid = *reg.PaidAmount
	}
	if total.IsNegative() || paid.IsNegative() {
		return domain.Participant{}, ErrInvalidAmount
	}

	now := time.Now().UTC()
	p := domain.Participant{
		ID:           uuid.New().String(),
		FullName:     reg.FullName,
		Phone:        reg.Phone,
		Age:          reg.Age,
		Email:        reg.Email,
		CreatedBy:    registrationActor,
		UpdatedBy:    registrationActor,
		RegisteredAt: now,
		UpdatedAt:    now,
		Version:      1,
	}
	p.SetAmounts(paid, total)

	qr, err := qrcode.EncodeDataURL(p.QRPayload())
	if err != nil {
		return domain.Participant{}, fmt.Errorf("qrcode.EncodeDataURL -> %w", err)
	}
	p.QRCode = qr

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	zap.L().Info("participant registered",
		zap.String("participant_id", created.ID),
		zap.String("status", string(created.PaymentStatus)))
	s.publish(domain.EventParticipantCreated, created)

	return created, nil
}

func (s *ParticipantService) Get(ctx context.Context, id string) (domain.Participant, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return p, nil
}

func (s *ParticipantService) List(ctx context.Context) ([]domain.Participant, error) {
	participants, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return participants, nil
}

// Update applies an admin edit. The status is always recomputed, the QR is
// re-encoded when its embedded name or status changed, and an amount change
// is recorded in the payment ledger.
func (s *ParticipantService) Update(ctx context.Context, id string, patch domain.ParticipantPatch, actor string) (domain.Participant, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	expected := current.Version
	if patch.Version > 0 {
		expected = patch.Version
	}

	next := current
	if patch.FullName != nil {
		next.FullName = *patch.FullName
	}
	if patch.Phone != nil {
		next.Phone = *patch.Phone
	}
	if patch.Age != nil {
		next.Age = *patch.Age
	}
	if patch.ClearEmail {
		next.Email = nil
	} else if patch.Email != nil {
		next.Email = patch.Email
	}

	paid, total := current.PaidAmount, current.TotalAmount
	if patch.PaidAmount != nil {
		paid = *patch.PaidAmount
	}
	if patch.TotalAmount != nil {
		total = *patch.TotalAmount
	}
	if paid.IsNegative() || total.IsNegative() {
		return domain.Participant{}, ErrInvalidAmount
	}
	next.SetAmounts(paid, total)
	next.UpdatedBy = actorOrDefault(actor)

	if next.FullName != current.FullName || next.PaymentStatus != current.PaymentStatus {
		if next.QRCode, err = qrcode.EncodeDataURL(next.QRPayload()); err != nil {
			return domain.Participant{}, fmt.Errorf("qrcode.EncodeDataURL -> %w", err)
		}
	}

	var updated domain.Participant
	if amountsChanged(current, next) {
		entry := domain.NewPaymentHistoryEntry(current, next, next.UpdatedBy)
		updated, err = s.repo.UpdateWithHistory(ctx, next, expected, entry)
		if err != nil {
			return domain.Participant{}, fmt.Errorf("s.repo.UpdateWithHistory -> %w", err)
		}
	} else {
		updated, err = s.repo.Update(ctx, next, expected)
		if err != nil {
			return domain.Participant{}, fmt.Errorf("s.repo.Update -> %w", err)
		}
	}

	s.publish(domain.EventParticipantUpdated, updated)

	return updated, nil
}

func (s *ParticipantService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	zap.L().Info("participant deleted", zap.String("participant_id", id))
	s.publisher.Publish(domain.LiveEvent{
		Type:          domain.EventParticipantDeleted,
		ParticipantID: id,
		At:            time.Now().UTC(),
	})

	return nil
}

// QRCode returns the PNG stored for the participant, re-encoding it when the
// stored data URL is missing or unreadable.
func (s *ParticipantService) QRCode(ctx context.Context, id string) ([]byte, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if png, err := qrcode.PNGFromDataURL(p.QRCode); err == nil {
		return png, nil
	}

	png, err := qrcode.Encode(p.QRPayload())
	if err != nil {
		return nil, fmt.Errorf("qrcode.Encode -> %w", err)
	}

	return png, nil
}

func (s *ParticipantService) publish(t domain.EventType, p domain.Participant) {
	s.publisher.Publish(domain.LiveEvent{
		Type:          t,
		ParticipantID: p.ID,
		Participant:   &p,
		At:            time.Now().UTC(),
	})
}

func amountsChanged(before, after domain.Participant) bool {
	return !before.PaidAmount.Equal(after.PaidAmount) || !before.TotalAmount.Equal(after.TotalAmount)
}

func actorOrDefault(actor string) string {
	if actor == "" {
		return "system"
	}
	return actor
}
