package twilio

import (
	"bati-server/internal/observability"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// RecordingClient fetches finished call recordings from Twilio's media API.
// Recording URLs arrive in the recording-completed webhook and require the
// account's basic-auth credentials to download.
type RecordingClient struct {
	accountSID string
	authToken  string
	httpClient *http.Client
	logger     *observability.Logger
}

func NewRecordingClient(accountSID, authToken string, logger *observability.Logger) *RecordingClient {
	return &RecordingClient{
		accountSID: accountSID,
		authToken:  authToken,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}
}

// Download stages the recording into a temp file and returns its path together
// with a cleanup function. The caller must invoke cleanup on every exit path;
// the remote recording itself is never deleted.
func (c *RecordingClient) Download(ctx context.Context, recordingURL string) (string, func(), error) {
	// Twilio serves WAV by default; the .mp3 suffix selects the smaller encoding.
	url := recordingURL
	if !strings.HasSuffix(url, ".mp3") && !strings.HasSuffix(url, ".wav") {
		url += ".mp3"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create recording request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "recording download failed", err)
		return "", nil, fmt.Errorf("recording download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("recording download returned status %d", resp.StatusCode)
		c.logger.Error(ctx, "recording download failed", err)
		return "", nil, err
	}

	tmp, err := os.CreateTemp("", "recording-*.mp3")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	cleanup := func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		cleanup()
		c.logger.Error(ctx, "failed to stage recording", err)
		return "", nil, fmt.Errorf("failed to stage recording: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("failed to close staged recording: %w", err)
	}

	return tmp.Name(), func() { os.Remove(tmp.Name()) }, nil
}
