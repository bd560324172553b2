package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

const (
	elevenLabsURL          = "https://api.elevenlabs.io/v1/text-to-speech"
	elevenLabsDefaultVoice = "EXAVITQu4vr4xnSDxMaL" // Rachel
	elevenLabsModel        = "eleven_multilingual_v2"
)

type ElevenLabsClient struct {
	apiKey  string
	voiceID string
	url     string
	httpCli *http.Client
}

func NewElevenLabsClient(apiKey, voiceID string) *ElevenLabsClient {
	if voiceID == "" {
		voiceID = elevenLabsDefaultVoice
	}

	return &ElevenLabsClient{
		apiKey:  apiKey,
		voiceID: voiceID,
		url:     elevenLabsURL,
		httpCli: http.DefaultClient,
	}
}

// TEXT → SPEECH
func (c *ElevenLabsClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	payload, err := json.Marshal(map[string]string{
		"text":     text,
		"model_id": elevenLabsModel,
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s", c.url, c.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("elevenlabs error: %s", string(b))
	}

	return io.ReadAll(resp.Body)
}
