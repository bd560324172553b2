package ai

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	openai "github.com/sashabaranov/go-openai"
)

const (
	perplexityURL   = "https://api.perplexity.ai/chat/completions"
	perplexityModel = "sonar"
)

// PerplexityClient — OpenAI-совместимый чат Perplexity, запасной провайдер.
type PerplexityClient struct {
	apiKey string
	url    string
	client *http.Client
}

func NewPerplexityClient(apiKey string) *PerplexityClient {
	return &PerplexityClient{
		apiKey: apiKey,
		url:    perplexityURL,
		client: &http.Client{},
	}
}

type perplexityMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type perplexityRequest struct {
	Model    string              `json:"model"`
	Messages []perplexityMessage `json:"messages"`
}

type perplexityResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *PerplexityClient) GetCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	reqBody := perplexityRequest{Model: perplexityModel}
	for _, m := range messages {
		reqBody.Messages = append(reqBody.Messages, perplexityMessage{Role: m.Role, Content: m.Content})
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("perplexity status: %s", resp.Status)
	}

	var out perplexityResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}

	if len(out.Choices) == 0 {
		return "", nil
	}

	return out.Choices[0].Message.Content, nil
}
