package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/eventpass-api/internal/domain"
	"github.com/vietanh2810/eventpass-api/internal/repository/dao"
)

type ScanSessionDAO interface {
	Insert(ctx context.Context, s dao.ScanSession) (dao.ScanSession, error)
}

type ScanSessionRepository struct {
	dao ScanSessionDAO
}

func NewScanSessionRepository(dao ScanSessionDAO) *ScanSessionRepository {
	return &ScanSessionRepository{
		dao: dao,
	}
}

func (r *ScanSessionRepository) Create(ctx context.Context, s domain.ScanSession) (domain.ScanSession, error) {
	created, err := r.dao.Insert(ctx, dao.ScanSession{
		ID:            s.ID,
		ParticipantID: s.ParticipantID,
		ScannedBy:     optional(s.ScannedBy),
		DeviceInfo:    optional(s.DeviceInfo),
		ResolvedVia:   string(s.ResolvedVia),
		ScannedAt:     s.ScannedAt,
	})
	if err != nil {
		return domain.ScanSession{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return domain.ScanSession{
		ID:            created.ID,
		ParticipantID: created.ParticipantID,
		ScannedBy:     deref(created.ScannedBy),
		DeviceInfo:    deref(created.DeviceInfo),
		ResolvedVia:   domain.ResolvedVia(created.ResolvedVia),
		ScannedAt:     created.ScannedAt,
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
