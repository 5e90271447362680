package nats

import (
	"testing"

	"github.com/LionGx2004/cannatracker/pkg/events"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
)

func TestSubjectForMatchesStreamPattern(t *testing.T) {
	subject := subjectFor(events.SessionLogged{})

	assert.Equal(t, "session.logged", subject)
	// The subject must fall under the stream's subject filter, otherwise
	// publishes are rejected by JetStream.
	assert.Contains(t, streamConfig().Subjects, "session.>")
	assert.True(t, len(subject) > len("session.") && subject[:len("session.")] == "session.")
}

func TestStreamConfigRetention(t *testing.T) {
	cfg := streamConfig()

	assert.Equal(t, "SESSIONS", cfg.Name)
	assert.Equal(t, jetstream.FileStorage, cfg.Storage)
	assert.Equal(t, jetstream.LimitsPolicy, cfg.Retention)
	assert.NotZero(t, cfg.MaxAge)
}
