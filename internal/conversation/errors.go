package conversation

import "fmt"

type Stage string

const (
	StageRecognition Stage = "recognition"
	StageCompletion  Stage = "completion"
	StageSynthesis   Stage = "synthesis"
)

// StageError помечает, на каком шаге упал конвейер.
// Наружу (HTTP) стадия не отдаётся — только в лог.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
