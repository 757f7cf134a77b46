package processor

import (
	"bati-server/internal/classify"
	"bati-server/internal/identity"
	"context"
)

// IdentityResolver maps a caller's number to a known member or an unknown
// client. It never fails; directory outages resolve to unknown.
type IdentityResolver interface {
	Resolve(ctx context.Context, phone string) identity.Caller
}

// RecordingFetcher stages a finished recording locally and hands back a
// cleanup function the caller must run on every exit path.
type RecordingFetcher interface {
	Download(ctx context.Context, recordingURL string) (string, func(), error)
}

// RecordingClassifier turns a staged recording into a structured result.
type RecordingClassifier interface {
	ClassifyRecording(ctx context.Context, audioPath string) (classify.Result, error)
}

// RecordPersister writes the classified result into the business records.
type RecordPersister interface {
	Persist(ctx context.Context, caller identity.Caller, result classify.Result, recordingURL string) error
}

// CallSessionProcessor is what the webhook handler drives. Every method
// returns a directive; none of them can fail from the handler's point of view.
type CallSessionProcessor interface {
	StartSession(ctx context.Context, from string) Directive
	HandleDialOutcome(ctx context.Context, from, dialStatus string) Directive
	CompleteSession(ctx context.Context, from, recordingURL string) Directive
}
