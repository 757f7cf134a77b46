package processor

import (
	"bati-server/internal/observability"
	"context"
	"fmt"
)

const (
	// Recordings are capped to bound storage and transcription cost.
	maxRecordSeconds = 120
	// How long the artisan's mobile rings before the secretary takes over.
	dialTimeoutSeconds = 10

	recordingCallbackPath = "/webhook/process-recording"
	takeoverCallbackPath  = "/webhook/ai-takeover"
)

const (
	greetingClient = "Bonjour, vous êtes bien chez Bati-Plâtre. Je suis l'assistante de l'entreprise, laissez votre message après le bip."
	// fallbackReply is what the caller hears whenever processing fails. It
	// acknowledges the message without promising anything the system may not
	// have done.
	fallbackReply = "Merci pour votre appel. Votre message a bien été enregistré et nous vous rappelons très vite. Au revoir."
)

// DirectiveKind selects how the voice responder renders a directive.
type DirectiveKind string

const (
	// DirectiveGreetRecord greets the caller then records their message.
	DirectiveGreetRecord DirectiveKind = "greet_record"
	// DirectiveDialForward rings the artisan first, with takeover on no answer.
	DirectiveDialForward DirectiveKind = "dial_forward"
	// DirectiveSayHangup speaks the final sentence and ends the call.
	DirectiveSayHangup DirectiveKind = "say_hangup"
	// DirectiveNone ends the exchange without speaking (forwarded call answered).
	DirectiveNone DirectiveKind = "none"
)

// Directive is the controller's outcome, ready for TwiML translation.
type Directive struct {
	Kind             DirectiveKind
	Sentence         string
	Number           string
	TimeoutSeconds   int
	MaxRecordSeconds int
	ActionPath       string
}

// Processor is the call session controller. It owns the session state
// machine, the greeting choice, the processing pipeline and the soft-failure
// fallback: whatever happens, the caller gets a directive with a sentence.
type Processor struct {
	resolver      IdentityResolver
	recordings    RecordingFetcher
	classifier    RecordingClassifier
	persister     RecordPersister
	forwardNumber string
	logger        *observability.Logger
}

func New(resolver IdentityResolver, recordings RecordingFetcher, classifier RecordingClassifier,
	persister RecordPersister, forwardNumber string, logger *observability.Logger) *Processor {
	return &Processor{
		resolver:      resolver,
		recordings:    recordings,
		classifier:    classifier,
		persister:     persister,
		forwardNumber: forwardNumber,
		logger:        logger,
	}
}

// StartSession handles the call-received event. With a forward number
// configured the artisan's mobile rings first; otherwise the secretary greets
// and records straight away.
func (p *Processor) StartSession(ctx context.Context, from string) Directive {
	session := NewSession(from, p.logger)
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_from", Value: from})

	if p.forwardNumber != "" {
		p.logger.Info(ctx, "forwarding call to the artisan before takeover")
		return Directive{
			Kind:           DirectiveDialForward,
			Number:         p.forwardNumber,
			TimeoutSeconds: dialTimeoutSeconds,
			ActionPath:     takeoverCallbackPath,
		}
	}

	directive := p.greetDirective(ctx, session)
	session.To(ctx, StateAwaitingRecording)
	return directive
}

// HandleDialOutcome handles the takeover event after a forwarded call. A
// completed dial means the artisan answered and the call is over; anything
// else becomes a secretary session.
func (p *Processor) HandleDialOutcome(ctx context.Context, from, dialStatus string) Directive {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_from", Value: from},
		observability.Field{Key: "dial_status", Value: dialStatus},
	)

	if dialStatus == "completed" {
		p.logger.Info(ctx, "forwarded call was answered, nothing to do")
		return Directive{Kind: DirectiveNone}
	}

	p.logger.Info(ctx, "forwarded call unanswered, secretary taking over")
	session := NewSession(from, p.logger)
	directive := p.greetDirective(ctx, session)
	session.To(ctx, StateAwaitingRecording)
	return directive
}

func (p *Processor) greetDirective(ctx context.Context, session *Session) Directive {
	session.Caller = p.resolver.Resolve(ctx, session.From)

	sentence := greetingClient
	if session.Caller.Known() {
		sentence = fmt.Sprintf(
			"Bonjour %s, mode gestion activé. Dictez votre rapport ou votre demande après le bip.",
			session.Caller.Member.CompanyName)
	}

	return Directive{
		Kind:             DirectiveGreetRecord,
		Sentence:         sentence,
		MaxRecordSeconds: maxRecordSeconds,
		ActionPath:       recordingCallbackPath,
	}
}

// CompleteSession handles the recording-completed event: download, classify,
// persist, reply. It always returns a spoken directive; every failure inside
// the pipeline degrades to the fallback sentence and the session still ends
// RESPONDED. The recording reference is never deleted, so the raw audio
// survives any processing failure.
func (p *Processor) CompleteSession(ctx context.Context, from, recordingURL string) Directive {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_from", Value: from},
		observability.Field{Key: "recording_url", Value: recordingURL},
	)

	session := NewSession(from, p.logger)
	session.RecordingURL = recordingURL
	session.To(ctx, StateAwaitingRecording)

	session.Caller = p.resolver.Resolve(ctx, from)
	session.To(ctx, StateProcessing)

	sentence := p.process(ctx, session)

	session.To(ctx, StateResponded)
	return Directive{Kind: DirectiveSayHangup, Sentence: sentence}
}

func (p *Processor) process(ctx context.Context, session *Session) string {
	audioPath, cleanup, err := p.recordings.Download(ctx, session.RecordingURL)
	if err != nil {
		p.logger.Error(ctx, "recording download failed, falling back; recording reference retained", err)
		return fallbackReply
	}
	defer cleanup()

	result, err := p.classifier.ClassifyRecording(ctx, audioPath)
	if err != nil {
		p.logger.Error(ctx, "classification failed, falling back; recording reference retained", err)
		return fallbackReply
	}

	if err := p.persister.Persist(ctx, session.Caller, result, session.RecordingURL); err != nil {
		// Classified but not persisted: the caller still gets the model's
		// confirmation, the inconsistency is an operational concern.
		p.logger.Error(ctx, "persistence failed after successful classification", err)
	}

	return result.VoiceReply
}
