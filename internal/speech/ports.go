package speech

import "context"

// STTClient — голос → текст
type STTClient interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// TTSClient — текст → голос (mp3-байты)
type TTSClient interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
