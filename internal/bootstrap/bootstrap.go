package bootstrap

import (
	"context"
	"fmt"

	"bati-server/internal/classify"
	"bati-server/internal/clients/openai"
	"bati-server/internal/clients/twilio"
	"bati-server/internal/config"
	"bati-server/internal/identity"
	"bati-server/internal/observability"
	"bati-server/internal/records"
	"bati-server/internal/store"
	voiceCallHandler "bati-server/internal/voicecall/handler"
	voiceCallProcessor "bati-server/internal/voicecall/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	Store  store.Store
	Logger *observability.Logger

	VoiceCallHandler voiceCallHandler.Handler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := deps.Store.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	// Initialize clients
	openaiClient, err := openai.NewClient(cfg.Services.OpenAIAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}
	recordingClient := twilio.NewRecordingClient(cfg.Services.TwilioAccountSID, cfg.Services.TwilioAuthToken, logger)

	// Initialize the call-handling pipeline
	resolver := identity.NewResolver(&deps.Store, logger)
	classifier := classify.New(openaiClient, logger)
	persister := records.New(&deps.Store, logger)

	callProcessor := voiceCallProcessor.New(
		resolver,
		recordingClient,
		classifier,
		persister,
		cfg.Voice.ForwardNumber,
		logger,
	)
	deps.VoiceCallHandler = voiceCallHandler.New(callProcessor, logger)

	return deps, nil
}

// Cleanup releases resources held by the dependencies.
func (d *Dependencies) Cleanup() {
	if db := d.Store.DB(); db != nil {
		_ = db.Close()
	}
}
