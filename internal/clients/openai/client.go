package openai

import (
	"bati-server/internal/observability"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openai/openai-go"
	openaiOption "github.com/openai/openai-go/option"
)

const chatModel = openai.ChatModelGPT4o

// Client wraps the OpenAI SDK for the two calls the secretary makes per
// recording: Whisper speech-to-text and a chat completion over the transcript.
type Client struct {
	apiKey string
	logger *observability.Logger
}

func NewClient(apiKey string, logger *observability.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}
	return &Client{apiKey: apiKey, logger: logger}, nil
}

// Transcribe sends the staged audio file to the Whisper API and returns the transcript.
func (c *Client) Transcribe(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	client := openai.NewClient(
		openaiOption.WithAPIKey(c.apiKey),
	)

	file := openai.File(f, filepath.Base(audioPath), "audio/mpeg")
	params := openai.AudioTranscriptionNewParams{
		Model:    openai.AudioModelWhisper1,
		File:     file,
		Language: openai.String("fr"),
	}
	resp, err := client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		c.logger.Error(ctx, "Whisper transcription failed", err)
		return "", fmt.Errorf("whisper transcription failed: %w", err)
	}
	return resp.Text, nil
}

// Complete runs a single chat completion with a system instruction and a user
// message, and returns the raw model text.
func (c *Client) Complete(ctx context.Context, systemPrompt, userMsg string) (string, error) {
	client := openai.NewClient(
		openaiOption.WithAPIKey(c.apiKey),
	)

	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userMsg),
		},
		Model: chatModel,
	}
	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		c.logger.Error(ctx, "chat completion failed", err)
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
