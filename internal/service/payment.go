package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vietanh2810/eventpass-api/internal/domain"
	"github.com/vietanh2810/eventpass-api/internal/pkg/qrcode"
	"github.com/vietanh2810/eventpass-api/internal/repository"
)

type PaymentService struct {
	repo      ParticipantRepository
	publisher Publisher
}

func NewPaymentService(repo ParticipantRepository, publisher Publisher) *PaymentService {
	return &PaymentService{
		repo:      repo,
		publisher: publisherOrNop(publisher),
	}
}

// ApplyPayment records new amounts for a participant. The status carried by
// the update is ignored and reclassified from the amounts. Every successful
// call appends exactly one ledger entry.
func (s *PaymentService) ApplyPayment(ctx context.Context, update domain.PaymentUpdate) (domain.Participant, error) {
	if update.PaidAmount.IsNegative() || update.TotalAmount.IsNegative() {
		return domain.Participant{}, ErrInvalidAmount
	}

	current, err := s.repo.FindByID(ctx, update.ParticipantID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	expected := current.Version
	if update.Version > 0 {
		expected = update.Version
	}

	next := current
	next.SetAmounts(update.PaidAmount, update.TotalAmount)
	next.UpdatedBy = actorOrDefault(update.UpdatedBy)

	if update.PaymentStatus != "" && update.PaymentStatus != next.PaymentStatus {
		zap.L().Debug("ignoring client payment status",
			zap.String("participant_id", current.ID),
			zap.String("sent", string(update.PaymentStatus)),
			zap.String("derived", string(next.PaymentStatus)))
	}

	if next.PaymentStatus != current.PaymentStatus {
		if next.QRCode, err = qrcode.EncodeDataURL(next.QRPayload()); err != nil {
			return domain.Participant{}, fmt.Errorf("qrcode.EncodeDataURL -> %w", err)
		}
	}

	entry := domain.NewPaymentHistoryEntry(current, next, next.UpdatedBy)

	updated, err := s.repo.UpdateWithHistory(ctx, next, expected, entry)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.UpdateWithHistory -> %w", err)
	}

	zap.L().Info("payment updated",
		zap.String("participant_id", updated.ID),
		zap.String("previous_status", string(current.PaymentStatus)),
		zap.String("status", string(updated.PaymentStatus)),
		zap.String("updated_by", updated.UpdatedBy))

	s.publisher.Publish(domain.LiveEvent{
		Type:          domain.EventPaymentUpdated,
		ParticipantID: updated.ID,
		Participant:   &updated,
		At:            time.Now().UTC(),
	})

	return updated, nil
}

// PaymentHistory lists the ledger newest first. Entries of deleted
// participants are still returned; an id with neither a participant nor any
// entry is not found.
func (s *PaymentService) PaymentHistory(ctx context.Context, participantID string) ([]domain.PaymentHistoryEntry, error) {
	entries, err := s.repo.FindPaymentHistory(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPaymentHistory -> %w", err)
	}

	if len(entries) > 0 {
		return entries, nil
	}

	exists, err := s.repo.Exists(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Exists -> %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("s.repo.Exists -> %w", repository.ErrParticipantNotFound)
	}

	return entries, nil
}
