package playback

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
)

// порядок поиска как у play-sound
var knownPlayers = []string{
	"mplayer", "afplay", "mpg123", "mpg321", "play", "omxplayer", "aplay", "cmdmp3", "cvlc",
}

var ErrNoPlayer = errors.New("no audio player found")

type CommandPlayer struct {
	command string
	log     *logger.ZapLogger
}

// NewCommandPlayer — command пустой: берём первый плеер из PATH.
// Отсутствие плеера не мешает старту, ошибка всплывёт при каждом Play.
func NewCommandPlayer(command string, log *logger.ZapLogger) *CommandPlayer {
	if command == "" {
		command = detect()
	}
	return &CommandPlayer{command: command, log: log}
}

func detect() string {
	for _, p := range knownPlayers {
		if _, err := exec.LookPath(p); err == nil {
			return p
		}
	}
	return ""
}

func (p *CommandPlayer) Command() string {
	return p.command
}

func (p *CommandPlayer) Play(path string) *Handle {
	h := newHandle()

	go func() {
		err := p.run(path)
		if err != nil {
			p.log.Log(logger.LogEntry{
				Level:   "error",
				Message: "음성 재생 중 에러",
				Error:   err,
				Service: "playback",
			})
		}
		h.finish(err)
	}()

	return h
}

func (p *CommandPlayer) run(path string) error {
	if p.command == "" {
		return ErrNoPlayer
	}

	args := []string{path}
	// cvlc иначе висит после конца файла
	if p.command == "cvlc" {
		args = []string{"--play-and-exit", path}
	}

	var stderr bytes.Buffer
	cmd := exec.Command(p.command, args...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			return fmt.Errorf("%s: %w", p.command, err)
		}
		return fmt.Errorf("%s: %w: %s", p.command, err, detail)
	}
	return nil
}
