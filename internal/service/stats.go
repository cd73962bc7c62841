package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vietanh2810/eventpass-api/internal/domain"
)

type StatsService struct {
	repo ParticipantRepository
	now  func() time.Time
}

func NewStatsService(repo ParticipantRepository) *StatsService {
	return &StatsService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *StatsService) Stats(ctx context.Context) (domain.Stats, error) {
	participants, err := s.repo.FindAll(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return domain.ComputeStats(participants, s.now()), nil
}
