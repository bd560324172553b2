package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

type CompletionClient interface {
	GetCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error)
}
