package speech

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	speechapi "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	gax "github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
)

const languageCode = "ko-KR"

type recognizer interface {
	Recognize(ctx context.Context, req *speechpb.RecognizeRequest, opts ...gax.CallOption) (*speechpb.RecognizeResponse, error)
	Close() error
}

type synthesizer interface {
	SynthesizeSpeech(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest, opts ...gax.CallOption) (*texttospeechpb.SynthesizeSpeechResponse, error)
	Close() error
}

func clientOptions(credentialsFile string) []option.ClientOption {
	if credentialsFile == "" {
		// ADC
		return nil
	}
	return []option.ClientOption{option.WithCredentialsFile(credentialsFile)}
}

var errClientClosed = errors.New("client closed")

// GoogleSTT — синхронное распознавание Google Cloud Speech (LINEAR16, ko-KR).
// Клиент создаётся при первом запросе: битые или отсутствующие креды
// не роняют старт, а дают ошибку распознавания.
type GoogleSTT struct {
	dial    func() (recognizer, error)
	once    sync.Once
	client  recognizer
	initErr error
}

func NewGoogleSTT(credentialsFile string) *GoogleSTT {
	return &GoogleSTT{
		dial: func() (recognizer, error) {
			client, err := speechapi.NewClient(context.Background(), clientOptions(credentialsFile)...)
			if err != nil {
				return nil, fmt.Errorf("failed to create speech client: %w", err)
			}
			return client, nil
		},
	}
}

func (g *GoogleSTT) conn() (recognizer, error) {
	g.once.Do(func() {
		g.client, g.initErr = g.dial()
	})
	return g.client, g.initErr
}

func (g *GoogleSTT) Close() error {
	g.once.Do(func() {
		g.initErr = errClientClosed
	})
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// Transcribe склеивает первую альтернативу каждого результата через "\n"
// в порядке ответа сервиса. Нет результатов — пустая строка,
// результат без альтернатив — ошибка.
func (g *GoogleSTT) Transcribe(ctx context.Context, audio []byte) (string, error) {
	client, err := g.conn()
	if err != nil {
		return "", err
	}

	resp, err := client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:     speechpb.RecognitionConfig_LINEAR16,
			LanguageCode: languageCode,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}

	lines := make([]string, 0, len(resp.GetResults()))
	for i, r := range resp.GetResults() {
		alts := r.GetAlternatives()
		if len(alts) == 0 {
			return "", fmt.Errorf("recognize: result %d has no alternatives", i)
		}
		lines = append(lines, alts[0].GetTranscript())
	}
	return strings.Join(lines, "\n"), nil
}

// GoogleTTS — синтез Google Cloud Text-to-Speech (ko-KR, NEUTRAL, MP3).
// Клиент ленивый, как у GoogleSTT.
type GoogleTTS struct {
	dial    func() (synthesizer, error)
	once    sync.Once
	client  synthesizer
	initErr error
}

func NewGoogleTTS(credentialsFile string) *GoogleTTS {
	return &GoogleTTS{
		dial: func() (synthesizer, error) {
			client, err := texttospeech.NewClient(context.Background(), clientOptions(credentialsFile)...)
			if err != nil {
				return nil, fmt.Errorf("failed to create tts client: %w", err)
			}
			return client, nil
		},
	}
}

func (g *GoogleTTS) conn() (synthesizer, error) {
	g.once.Do(func() {
		g.client, g.initErr = g.dial()
	})
	return g.client, g.initErr
}

func (g *GoogleTTS) Close() error {
	g.once.Do(func() {
		g.initErr = errClientClosed
	})
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func (g *GoogleTTS) Synthesize(ctx context.Context, text string) ([]byte, error) {
	client, err := g.conn()
	if err != nil {
		return nil, err
	}

	resp, err := client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: languageCode,
			SsmlGender:   texttospeechpb.SsmlVoiceGender_NEUTRAL,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}
	return resp.GetAudioContent(), nil
}
