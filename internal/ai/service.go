package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

type Service struct {
	client CompletionClient
}

func NewService(client CompletionClient) *Service {
	return &Service{client: client}
}

// Reply — один ход без истории и без системного промпта.
// Пустой текст не отсекается, уходит в модель как есть.
func (s *Service) Reply(ctx context.Context, text string) (string, error) {
	return s.client.GetCompletion(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: text},
	})
}
