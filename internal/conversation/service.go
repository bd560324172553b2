package conversation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/voice_relay/internal/error_notificator"
	"github.com/Vovarama1992/voice_relay/internal/playback"
)

const (
	serviceName = "voice_relay"

	// MsgFailed — и лог, и тело ответа при любой ошибке конвейера
	MsgFailed = "대화 중 에러"
)

type Result struct {
	Transcription string
	Reply         string
	AudioPath     string
}

type Service struct {
	stt      Transcriber
	chat     Replier
	tts      Synthesizer
	player   playback.Player
	notifier error_notificator.Notificator
	log      *logger.ZapLogger
}

func NewService(
	stt Transcriber,
	chat Replier,
	tts Synthesizer,
	player playback.Player,
	notifier error_notificator.Notificator,
	log *logger.ZapLogger,
) *Service {
	return &Service{
		stt:      stt,
		chat:     chat,
		tts:      tts,
		player:   player,
		notifier: notifier,
		log:      log,
	}
}

// Converse: голос → текст → GPT → голос → плеер. Любая ошибка обрывает
// цепочку, частичного результата нет.
func (s *Service) Converse(ctx context.Context, requestID string, audio []byte) (*Result, error) {
	transcription, err := s.stt.Transcribe(ctx, audio)
	if err != nil {
		return nil, s.fail(requestID, StageRecognition, err)
	}
	s.info(requestID, "User: "+transcription)

	reply, err := s.chat.Reply(ctx, transcription)
	if err != nil {
		return nil, s.fail(requestID, StageCompletion, err)
	}
	s.info(requestID, "GPT: "+reply)

	path, err := s.tts.Synthesize(ctx, reply)
	if err != nil {
		return nil, s.fail(requestID, StageSynthesis, err)
	}

	// не ждём: ошибка плеера уйдёт только в лог
	s.player.Play(path)

	return &Result{
		Transcription: transcription,
		Reply:         reply,
		AudioPath:     path,
	}, nil
}

func (s *Service) fail(requestID string, stage Stage, err error) error {
	stageErr := &StageError{Stage: stage, Err: err}

	s.log.Log(logger.LogEntry{
		Level:   "error",
		Message: fmt.Sprintf("%s [request=%s stage=%s]", MsgFailed, requestID, stage),
		Error:   err,
		Service: serviceName,
	})

	// клиент ушёл сам — админа не дёргаем
	if errors.Is(err, context.Canceled) {
		return stageErr
	}

	go func() {
		details := fmt.Sprintf("request=%s stage=%s", requestID, stage)
		if nErr := s.notifier.Notify(context.Background(), stageErr, details); nErr != nil {
			s.log.Log(logger.LogEntry{
				Level:   "warn",
				Message: "admin notification failed",
				Error:   nErr,
				Service: serviceName,
			})
		}
	}()

	return stageErr
}

func (s *Service) info(requestID, msg string) {
	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("%s [request=%s]", msg, requestID),
		Service: serviceName,
	})
}
