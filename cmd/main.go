package main

import (
	"log"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/voice_relay/internal/ai"
	"github.com/Vovarama1992/voice_relay/internal/config"
	"github.com/Vovarama1992/voice_relay/internal/conversation"
	"github.com/Vovarama1992/voice_relay/internal/delivery"
	"github.com/Vovarama1992/voice_relay/internal/error_notificator"
	"github.com/Vovarama1992/voice_relay/internal/playback"
	"github.com/Vovarama1992/voice_relay/internal/speech"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / CONFIG
	// =========================================================================

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// CLIENTS (STT / GPT / TTS)
	// =========================================================================

	var stt speech.STTClient
	switch cfg.STTProvider {
	case config.ProviderDeepgram:
		stt = speech.NewDeepgramClient(cfg.DeepgramKey)
	default:
		// клиент поднимется на первом запросе, креды тут не проверяем
		g := speech.NewGoogleSTT(cfg.GoogleCredentialsFile)
		defer g.Close()
		stt = g
	}

	var tts speech.TTSClient
	switch cfg.TTSProvider {
	case config.ProviderElevenLabs:
		tts = speech.NewElevenLabsClient(cfg.ElevenLabsKey, cfg.ElevenLabsVoiceID)
	default:
		g := speech.NewGoogleTTS(cfg.GoogleCredentialsFile)
		defer g.Close()
		tts = g
	}

	var chatClient ai.CompletionClient
	switch cfg.ChatProvider {
	case config.ProviderPerplexity:
		chatClient = ai.NewPerplexityClient(cfg.PerplexityKey)
	default:
		chatClient = ai.NewOpenAIClient(cfg.OpenAIKey)
	}

	// =========================================================================
	// SIDE CHANNELS (PLAYER / ADMIN ALERTS)
	// =========================================================================

	player := playback.NewCommandPlayer(cfg.PlayerCommand, zl)
	if player.Command() == "" {
		zl.Log(logger.LogEntry{
			Level:   "warn",
			Message: "no audio player found in PATH, playback will fail",
			Service: "voice_relay",
		})
	}

	notifyInfra, err := error_notificator.NewTelegramInfra(cfg.TelegramBotToken, cfg.AdminChatID)
	if err != nil {
		zl.Log(logger.LogEntry{Level: "warn", Message: "admin notifications disabled", Error: err, Service: "voice_relay"})
		notifyInfra = error_notificator.Noop{}
	}
	errService := error_notificator.NewService(notifyInfra)

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	speechService := speech.NewService(stt, tts, speech.NewCounter(), cfg.OutputDir)
	aiService := ai.NewService(chatClient)

	conversationService := conversation.NewService(
		speechService, // STT
		aiService,     // GPT
		speechService, // TTS → response<N>.mp3
		player,
		errService,
		zl,
	)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	delivery.RegisterRoutes(
		r,
		delivery.NewConversationHandler(conversationService, cfg.MaxUploadBytes, zl),
	)

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "서버가 포트 " + cfg.Port + "에서 실행중입니다",
		Service: "voice_relay",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
