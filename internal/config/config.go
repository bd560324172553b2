package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	ProviderGoogle     = "google"
	ProviderDeepgram   = "deepgram"
	ProviderElevenLabs = "elevenlabs"
	ProviderOpenAI     = "openai"
	ProviderPerplexity = "perplexity"

	defaultPort           = "3000"
	defaultMaxUploadBytes = 20 << 20
)

// Config — всё окружение процесса. Ключи не проверяются на старте:
// отсутствующий ключ проявится ошибкой при первом запросе к вендору.
type Config struct {
	Port string

	GoogleCredentialsFile string
	OpenAIKey             string
	PerplexityKey         string
	DeepgramKey           string
	ElevenLabsKey         string
	ElevenLabsVoiceID     string

	STTProvider  string
	ChatProvider string
	TTSProvider  string

	OutputDir      string
	PlayerCommand  string
	MaxUploadBytes int64

	TelegramBotToken string
	AdminChatID      int64
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:                  getenv("PORT", defaultPort),
		GoogleCredentialsFile: os.Getenv("GOOGLE_API_KEY"),
		OpenAIKey:             os.Getenv("OPENAI_API_KEY"),
		PerplexityKey:         os.Getenv("PERPLEXITY_API_KEY"),
		DeepgramKey:           os.Getenv("DEEPGRAM_API_KEY"),
		ElevenLabsKey:         os.Getenv("ELEVENLABS_API_KEY"),
		ElevenLabsVoiceID:     os.Getenv("ELEVENLABS_VOICE_ID"),
		STTProvider:           getenv("STT_PROVIDER", ProviderGoogle),
		ChatProvider:          getenv("CHAT_PROVIDER", ProviderOpenAI),
		TTSProvider:           getenv("TTS_PROVIDER", ProviderGoogle),
		OutputDir:             getenv("AUDIO_DIR", "."),
		PlayerCommand:         os.Getenv("AUDIO_PLAYER"),
		MaxUploadBytes:        defaultMaxUploadBytes,
		TelegramBotToken:      os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	switch cfg.STTProvider {
	case ProviderGoogle, ProviderDeepgram:
	default:
		return nil, fmt.Errorf("unknown STT_PROVIDER %q", cfg.STTProvider)
	}

	switch cfg.ChatProvider {
	case ProviderOpenAI, ProviderPerplexity:
	default:
		return nil, fmt.Errorf("unknown CHAT_PROVIDER %q", cfg.ChatProvider)
	}

	switch cfg.TTSProvider {
	case ProviderGoogle, ProviderElevenLabs:
	default:
		return nil, fmt.Errorf("unknown TTS_PROVIDER %q", cfg.TTSProvider)
	}

	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES %q", v)
		}
		cfg.MaxUploadBytes = n
	}

	if v := os.Getenv("ADMIN_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_CHAT_ID %q: %w", v, err)
		}
		cfg.AdminChatID = id
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
