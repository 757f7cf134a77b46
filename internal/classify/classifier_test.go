package classify

import (
	"bati-server/internal/observability"
	"context"
	"errors"
	"testing"
)

type fakeSpeechModel struct {
	transcript    string
	transcribeErr error
	completion    string
	completeErr   error

	gotUserMsg string
}

func (f *fakeSpeechModel) Transcribe(ctx context.Context, audioPath string) (string, error) {
	return f.transcript, f.transcribeErr
}

func (f *fakeSpeechModel) Complete(ctx context.Context, systemPrompt, userMsg string) (string, error) {
	f.gotUserMsg = userMsg
	return f.completion, f.completeErr
}

func TestClassifier_ClassifyRecording(t *testing.T) {
	model := &fakeSpeechModel{
		transcript: "Bonjour, il me faudrait un devis pour 45 mètres carrés de placo.",
		completion: `{"categorie":"DEVIS","resume":"Devis placo 45m2","details":{"surface_m2":45},"reponse_vocale":"C'est noté."}`,
	}

	classifier := New(model, observability.NewLogger())
	result, err := classifier.ClassifyRecording(context.Background(), "/tmp/recording.mp3")
	if err != nil {
		t.Fatalf("ClassifyRecording() error = %v", err)
	}
	if result.Category != CategoryQuote {
		t.Errorf("Category = %q, want DEVIS", result.Category)
	}
	if model.gotUserMsg != model.transcript {
		t.Errorf("classification ran on %q, want the transcript", model.gotUserMsg)
	}
}

func TestClassifier_Failures(t *testing.T) {
	tests := []struct {
		name  string
		model *fakeSpeechModel
	}{
		{
			name:  "transcription failure",
			model: &fakeSpeechModel{transcribeErr: errors.New("timeout")},
		},
		{
			name:  "empty transcript",
			model: &fakeSpeechModel{transcript: "   "},
		},
		{
			name: "completion failure",
			model: &fakeSpeechModel{
				transcript:  "un message",
				completeErr: errors.New("503 service unavailable"),
			},
		},
		{
			name: "malformed output",
			model: &fakeSpeechModel{
				transcript: "un message",
				completion: "désolé, je ne peux pas répondre en JSON",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := New(tt.model, observability.NewLogger())
			_, err := classifier.ClassifyRecording(context.Background(), "/tmp/recording.mp3")
			if err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
