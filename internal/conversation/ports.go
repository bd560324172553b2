package conversation

import "context"

type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

type Replier interface {
	Reply(ctx context.Context, text string) (string, error)
}

// Synthesizer озвучивает текст и возвращает путь к записанному файлу.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (string, error)
}
