package domain

import "time"

type EventType string

const (
	EventParticipantCreated EventType = "participant.created"
	EventParticipantUpdated EventType = "participant.updated"
	EventParticipantDeleted EventType = "participant.deleted"
	EventPaymentUpdated     EventType = "payment.updated"
	EventParticipantScanned EventType = "participant.scanned"
)

// LiveEvent is pushed to connected dashboards whenever a participant changes.
type LiveEvent struct {
	Type          EventType    `json:"type"`
	ParticipantID string       `json:"participantId"`
	Participant   *Participant `json:"participant,omitempty"`
	At            time.Time    `json:"at"`
}
