package processor

import (
	"bati-server/internal/identity"
	"bati-server/internal/observability"
	"context"
	"time"
)

// State is the position of a call session in its lifecycle. Sessions only
// move forward: RECEIVED → AWAITING_RECORDING → PROCESSING → RESPONDED.
// Failures never add a terminal state of their own; they reroute the reply
// and the session still ends RESPONDED.
type State string

const (
	StateReceived          State = "RECEIVED"
	StateAwaitingRecording State = "AWAITING_RECORDING"
	StateProcessing        State = "PROCESSING"
	StateResponded         State = "RESPONDED"
)

// Session is the in-flight state of one phone call. It lives for the duration
// of a single webhook delivery; the two deliveries of a call are correlated by
// the caller's phone number, not by shared process state.
type Session struct {
	From         string
	Caller       identity.Caller
	RecordingURL string
	StartedAt    time.Time

	state  State
	logger *observability.Logger
}

func NewSession(from string, logger *observability.Logger) *Session {
	return &Session{
		From:      from,
		StartedAt: time.Now(),
		state:     StateReceived,
		logger:    logger,
	}
}

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// To advances the session and logs the transition.
func (s *Session) To(ctx context.Context, next State) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_from", Value: s.From},
		observability.Field{Key: "session_state", Value: string(s.state)},
		observability.Field{Key: "session_next_state", Value: string(next)},
	)
	s.logger.Info(ctx, "call session transition")
	s.state = next
}
