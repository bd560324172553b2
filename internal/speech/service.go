package speech

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// === Единый сервис (и для стт и для ттс) ===

type Service struct {
	stt     STTClient
	tts     TTSClient
	counter *Counter
	outDir  string
}

func NewService(stt STTClient, tts TTSClient, counter *Counter, outDir string) *Service {
	if outDir == "" {
		outDir = "."
	}
	return &Service{
		stt:     stt,
		tts:     tts,
		counter: counter,
		outDir:  outDir,
	}
}

func (s *Service) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return s.stt.Transcribe(ctx, audio)
}

// Synthesize озвучивает текст и пишет результат в response<N>.mp3.
// Номер берётся у счётчика только после успешного синтеза.
func (s *Service) Synthesize(ctx context.Context, text string) (string, error) {
	audio, err := s.tts.Synthesize(ctx, text)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.outDir, 0755); err != nil {
		return "", fmt.Errorf("create audio dir: %w", err)
	}

	path := filepath.Join(s.outDir, fileName(s.counter.Next()))
	if err := os.WriteFile(path, audio, 0644); err != nil {
		return "", fmt.Errorf("write audio: %w", err)
	}
	return path, nil
}

func fileName(n uint64) string {
	return fmt.Sprintf("response%d.mp3", n)
}
