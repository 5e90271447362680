package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is the envelope published to the in-process bus and, when
// configured, forwarded to NATS JetStream.
type Event interface {
	EventType() string
	Payload() interface{}
}

type SessionLogged struct {
	SessionId  uuid.UUID `json:"session_id"`
	UserId     uuid.UUID `json:"user_id"`
	Strain     string    `json:"strain"`
	Amount     float64   `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e SessionLogged) EventType() string {
	return "session.logged"
}

func (e SessionLogged) Payload() interface{} {
	return e
}
