package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/eventpass-api/internal/domain"
	"github.com/vietanh2810/eventpass-api/internal/repository/dao"
)

var (
	ErrParticipantNotFound = dao.ErrParticipantNotFound
	ErrVersionConflict     = dao.ErrVersionConflict
)

type ParticipantDAO interface {
	Insert(ctx context.Context, p dao.Participant) (dao.Participant, error)
	FindByID(ctx context.Context, id string) (dao.Participant, error)
	FindAll(ctx context.Context) ([]dao.Participant, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, p dao.Participant, expectedVersion int) (dao.Participant, error)
	UpdateWithHistory(ctx context.Context, p dao.Participant, expectedVersion int, entry dao.PaymentHistory) (dao.Participant, error)
	Delete(ctx context.Context, id string) error
}

type PaymentHistoryDAO interface {
	FindByParticipantID(ctx context.Context, participantID string) ([]dao.PaymentHistory, error)
}

type ParticipantRepository struct {
	dao        ParticipantDAO
	historyDAO PaymentHistoryDAO
}

func NewParticipantRepository(dao ParticipantDAO, historyDAO PaymentHistoryDAO) *ParticipantRepository {
	return &ParticipantRepository{
		dao:        dao,
		historyDAO: historyDAO,
	}
}

func (r *ParticipantRepository) Create(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	created, err := r.dao.Insert(ctx, participantDomainToDAO(p))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return participantDAOToDomain(created), nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id string) (domain.Participant, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return participantDAOToDomain(found), nil
}

func (r *ParticipantRepository) FindAll(ctx context.Context) ([]domain.Participant, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	participants := make([]domain.Participant, 0, len(found))
	for _, p := range found {
		participants = append(participants, participantDAOToDomain(p))
	}

	return participants, nil
}

func (r *ParticipantRepository) Exists(ctx context.Context, id string) (bool, error) {
	exists, err := r.dao.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return exists, nil
}

func (r *ParticipantRepository) Update(ctx context.Context, p domain.Participant, expectedVersion int) (domain.Participant, error) {
	updated, err := r.dao.Update(ctx, participantDomainToDAO(p), expectedVersion)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return participantDAOToDomain(updated), nil
}

// UpdateWithHistory persists p and appends entry in a single transaction.
func (r *ParticipantRepository) UpdateWithHistory(ctx context.Context, p domain.Participant, expectedVersion int, entry domain.PaymentHistoryEntry) (domain.Participant, error) {
	updated, err := r.dao.UpdateWithHistory(ctx, participantDomainToDAO(p), expectedVersion, historyDomainToDAO(entry))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.UpdateWithHistory -> %w", err)
	}

	return participantDAOToDomain(updated), nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ParticipantRepository) FindPaymentHistory(ctx context.Context, participantID string) ([]domain.PaymentHistoryEntry, error) {
	found, err := r.historyDAO.FindByParticipantID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("r.historyDAO.FindByParticipantID -> %w", err)
	}

	entries := make([]domain.PaymentHistoryEntry, 0, len(found))
	for _, e := range found {
		entries = append(entries, historyDAOToDomain(e))
	}

	return entries, nil
}

func statusToDAO(s domain.PaymentStatus) string {
	switch s {
	case domain.PaymentPaid:
		return dao.StatusPaid
	case domain.PaymentPartial:
		return dao.StatusPartial
	default:
		return dao.StatusUnpaid
	}
}

func statusToDomain(s string) domain.PaymentStatus {
	switch s {
	case dao.StatusPaid:
		return domain.PaymentPaid
	case dao.StatusPartial:
		return domain.PaymentPartial
	default:
		return domain.PaymentUnpaid
	}
}

func participantDomainToDAO(p domain.Participant) dao.Participant {
	return dao.Participant{
		ID:            p.ID,
		FullName:      p.FullName,
		Phone:         p.Phone,
		Age:           p.Age,
		Email:         p.Email,
		PaymentStatus: statusToDAO(p.PaymentStatus),
		TotalAmount:   p.TotalAmount,
		PaidAmount:    p.PaidAmount,
		QRCode:        p.QRCode,
		CreatedBy:     p.CreatedBy,
		UpdatedBy:     p.UpdatedBy,
		Version:       p.Version,
		RegisteredAt:  p.RegisteredAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func participantDAOToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		ID:            p.ID,
		FullName:      p.FullName,
		Phone:         p.Phone,
		Age:           p.Age,
		Email:         p.Email,
		PaymentStatus: statusToDomain(p.PaymentStatus),
		TotalAmount:   p.TotalAmount,
		PaidAmount:    p.PaidAmount,
		QRCode:        p.QRCode,
		CreatedBy:     p.CreatedBy,
		UpdatedBy:     p.UpdatedBy,
		Version:       p.Version,
		RegisteredAt:  p.RegisteredAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func historyDomainToDAO(e domain.PaymentHistoryEntry) dao.PaymentHistory {
	return dao.PaymentHistory{
		ID:                  e.ID,
		ParticipantID:       e.ParticipantID,
		PreviousPaidAmount:  e.PreviousPaidAmount,
		NewPaidAmount:       e.NewPaidAmount,
		PreviousTotalAmount: e.PreviousTotalAmount,
		NewTotalAmount:      e.NewTotalAmount,
		PreviousStatus:      statusToDAO(e.PreviousStatus),
		NewStatus:           statusToDAO(e.NewStatus),
		UpdatedBy:           e.UpdatedBy,
		CreatedAt:           e.CreatedAt,
	}
}

func historyDAOToDomain(e dao.PaymentHistory) domain.PaymentHistoryEntry {
	return domain.PaymentHistoryEntry{
		ID:                  e.ID,
		ParticipantID:       e.ParticipantID,
		PreviousPaidAmount:  e.PreviousPaidAmount,
		NewPaidAmount:       e.NewPaidAmount,
		PreviousTotalAmount: e.PreviousTotalAmount,
		NewTotalAmount:      e.NewTotalAmount,
		PreviousStatus:      statusToDomain(e.PreviousStatus),
		NewStatus:           statusToDomain(e.NewStatus),
		UpdatedBy:           e.UpdatedBy,
		CreatedAt:           e.CreatedAt,
	}
}
