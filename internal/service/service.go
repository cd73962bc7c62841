package service

import (
	"errors"

	"github.com/vietanh2810/eventpass-api/internal/domain"
	"github.com/vietanh2810/eventpass-api/internal/repository"
)

var (
	ErrParticipantNotFound = repository.ErrParticipantNotFound
	ErrVersionConflict     = repository.ErrVersionConflict
	ErrInvalidAmount       = errors.New("amounts must be zero or greater")
)

// Publisher fans participant changes out to live dashboards.
type Publisher interface {
	Publish(event domain.LiveEvent)
}

type nopPublisher struct{}

func (nopPublisher) Publish(domain.LiveEvent) {}

func publisherOrNop(p Publisher) Publisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}
