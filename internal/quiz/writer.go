package quiz

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Writer is the best-effort persistence queue used by sessions. Tasks run in a
// single background goroutine; the engine never blocks on them, failures are
// logged and dropped, and there are no retries. A task already in flight is not
// aborted by a later restart, so a stale write may land afterwards; that race
// is tolerated.
type Writer struct {
	tasks   chan writeTask
	done    chan struct{}
	timeout time.Duration

	mu     sync.Mutex
	closed bool
}

type writeTask struct {
	name string
	fn   func(ctx context.Context) error
}

// NewWriter starts the background worker. buffer bounds the number of pending
// writes; once full, further writes are dropped with a log line.
func NewWriter(buffer int) *Writer {
	if buffer <= 0 {
		buffer = 64
	}
	w := &Writer{
		tasks:   make(chan writeTask, buffer),
		done:    make(chan struct{}),
		timeout: 10 * time.Second,
	}
	go w.run()
	return w
}

func (w *Writer) run() {
	defer close(w.done)
	for t := range w.tasks {
		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		if err := t.fn(ctx); err != nil {
			log.Error().Err(err).Str("task", t.name).Msg("Best-effort write failed; dropping")
		}
		cancel()
	}
}

// Enqueue submits a write without waiting for it. Returns false when the task
// was dropped (queue full or writer closed).
func (w *Writer) Enqueue(name string, fn func(ctx context.Context) error) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		log.Warn().Str("task", name).Msg("Write enqueued after writer close; dropping")
		return false
	}
	select {
	case w.tasks <- writeTask{name: name, fn: fn}:
		return true
	default:
		log.Warn().Str("task", name).Msg("Write queue full; dropping")
		return false
	}
}

// Close stops accepting tasks and waits for the pending ones to finish.
func (w *Writer) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		<-w.done
		return
	}
	w.closed = true
	close(w.tasks)
	w.mu.Unlock()
	<-w.done
}
