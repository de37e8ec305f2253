package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Engine synthesizes speech through an HTTP TTS service and stores the
// resulting audio files on disk for playback.
type Engine struct {
	endpoint string
	voice    string
	dir      string
	client   *http.Client
}

func New(endpoint, voice, dir string) *Engine {
	return &Engine{
		endpoint: endpoint,
		voice:    voice,
		dir:      dir,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type synthesizeRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

// Synthesize converts text to speech and returns the path of the written
// audio file.
func (e *Engine) Synthesize(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(synthesizeRequest{Text: text, Voice: e.voice})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("tts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("tts service returned %d: %s", resp.StatusCode, string(body))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("tts response read failed: %w", err)
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(e.dir, fmt.Sprintf("speech_%s.mp3", uuid.NewString()))
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
