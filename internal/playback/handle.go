package playback

// Handle — результат отложенного воспроизведения. HTTP-ответ его не ждёт,
// читают только логгер и тесты.
type Handle struct {
	done chan struct{}
	err  error
}

func newHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

func (h *Handle) finish(err error) {
	h.err = err
	close(h.done)
}

func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Err валиден после закрытия Done.
func (h *Handle) Err() error {
	<-h.done
	return h.err
}
