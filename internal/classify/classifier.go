package classify

import (
	"bati-server/internal/observability"
	"context"
	"errors"
	"fmt"
	"strings"
)

// SpeechModel is the external AI capability the classifier depends on:
// audio to text, then text to free-form model output.
type SpeechModel interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
	Complete(ctx context.Context, systemPrompt, userMsg string) (string, error)
}

// Classifier turns a staged recording into a structured Result through two
// chained model calls. Any failure surfaces as a single error; the controller
// does not distinguish sub-kinds, so the distinction only shows up in logs.
type Classifier struct {
	model  SpeechModel
	logger *observability.Logger
}

func New(model SpeechModel, logger *observability.Logger) *Classifier {
	return &Classifier{model: model, logger: logger}
}

// ClassifyRecording transcribes the staged audio file and classifies the
// transcript against the fixed JSON contract.
func (c *Classifier) ClassifyRecording(ctx context.Context, audioPath string) (Result, error) {
	transcript, err := c.model.Transcribe(ctx, audioPath)
	if err != nil {
		c.logger.Error(ctx, "transcription failed", err)
		return Result{}, fmt.Errorf("transcription failed: %w", err)
	}
	if strings.TrimSpace(transcript) == "" {
		err := errors.New("empty transcript")
		c.logger.Error(ctx, "transcription produced no text", err)
		return Result{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "transcript_len", Value: len(transcript)})

	raw, err := c.model.Complete(ctx, systemPrompt, transcript)
	if err != nil {
		c.logger.Error(ctx, "classification call failed", err)
		return Result{}, fmt.Errorf("classification call failed: %w", err)
	}

	result, err := ParseModelOutput(raw)
	if err != nil {
		// Keep the offending text; it is the only way to diagnose contract drift.
		c.logger.Error(ctx, "model output did not match the JSON contract: "+raw, err)
		return Result{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "category", Value: string(result.Category)})
	c.logger.Info(ctx, "recording classified")
	return result, nil
}
