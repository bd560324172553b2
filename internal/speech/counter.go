package speech

import "sync/atomic"

// Counter выдаёт номера файлов ответа: 0, 1, 2, ...
// Живёт в памяти процесса, после рестарта начинает с нуля.
type Counter struct {
	n atomic.Uint64
}

func NewCounter() *Counter {
	return &Counter{}
}

// Next атомарно увеличивает счётчик и возвращает предыдущее значение.
func (c *Counter) Next() uint64 {
	return c.n.Add(1) - 1
}
