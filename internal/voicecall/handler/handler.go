package handler

import (
	"net/http"

	"bati-server/internal/observability"
	"bati-server/internal/voicecall/processor"
	"bati-server/internal/voicecall/respond"

	"github.com/gin-gonic/gin"
)

// Handler translates telephony webhooks into session events and renders the
// resulting directive as TwiML. Every endpoint answers 200 with a voice
// document; an error status would make the telephony provider play its own
// English error message to a French caller.
type Handler struct {
	processor processor.CallSessionProcessor
	logger    *observability.Logger
}

func New(processor processor.CallSessionProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleIncomingCall handles POST /webhook/incoming-call, the first webhook of
// every call.
func (h *Handler) HandleIncomingCall(c *gin.Context) {
	ctx := c.Request.Context()
	from := c.PostForm("From")

	directive := h.processor.StartSession(ctx, from)
	h.render(c, directive)
}

// HandleDialTakeover handles POST /webhook/ai-takeover, posted after a
// forwarded call ends or times out.
func (h *Handler) HandleDialTakeover(c *gin.Context) {
	ctx := c.Request.Context()
	from := c.PostForm("From")
	dialStatus := c.PostForm("DialCallStatus")

	directive := h.processor.HandleDialOutcome(ctx, from, dialStatus)
	h.render(c, directive)
}

// HandleRecordingComplete handles POST /webhook/process-recording, posted once
// the caller's message has been recorded.
func (h *Handler) HandleRecordingComplete(c *gin.Context) {
	ctx := c.Request.Context()
	from := c.PostForm("From")
	recordingURL := c.PostForm("RecordingUrl")

	directive := h.processor.CompleteSession(ctx, from, recordingURL)
	h.render(c, directive)
}

func (h *Handler) render(c *gin.Context, directive processor.Directive) {
	var doc string
	var err error

	switch directive.Kind {
	case processor.DirectiveGreetRecord:
		doc, err = respond.GreetRecord(directive.Sentence, directive.MaxRecordSeconds, directive.ActionPath)
	case processor.DirectiveDialForward:
		doc, err = respond.DialWithTakeover(directive.Number, directive.TimeoutSeconds, directive.ActionPath)
	case processor.DirectiveSayHangup:
		doc, err = respond.SayHangup(directive.Sentence)
	case processor.DirectiveNone:
		doc, err = respond.Empty()
	default:
		doc = respond.FallbackDocument
	}

	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to render voice document", err)
		doc = respond.FallbackDocument
	}

	c.Data(http.StatusOK, "text/xml; charset=utf-8", []byte(doc))
}
