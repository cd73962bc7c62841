package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vietanh2810/eventpass-api/internal/domain"
)

type ParticipantResponse struct {
	domain.Participant
	PendingAmount decimal.Decimal `json:"pendingAmount"`
}

func NewParticipantResponse(p domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		Participant:   p,
		PendingAmount: p.PendingAmount(),
	}
}

func NewParticipantResponses(ps []domain.Participant) []ParticipantResponse {
	out := make([]ParticipantResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewParticipantResponse(p))
	}
	return out
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	Admin     domain.Admin `json:"admin"`
}

type ScanResponse struct {
	Participant ParticipantResponse `json:"participant"`
	ResolvedVia domain.ResolvedVia  `json:"resolvedVia"`
	Embedded    domain.ScanPayload  `json:"embedded"`
	StatusLabel string              `json:"statusLabel"`
	Message     string              `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
