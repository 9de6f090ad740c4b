// Package persist is the boundary between the trackers and a storage.Adapter.
// Storage failures stop here: loads report them as ErrHydration for the
// caller to log, writes are logged and counted but never returned.
package persist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/runnerr0/toolmarks/internal/metrics"
	"github.com/runnerr0/toolmarks/internal/storage"
)

var (
	ErrHydration = errors.New("hydration failed")
	ErrWrite     = errors.New("persistence write failed")
)

const defaultWriteTimeout = 2 * time.Second

// Writer serializes snapshot writes onto one background goroutine.
// Writes for the same key coalesce: only the newest pending value is saved.
type Writer struct {
	adapter  storage.Adapter
	logger   *slog.Logger
	observer metrics.Observer
	timeout  time.Duration

	mu       sync.Mutex
	idle     *sync.Cond
	pending  map[string]string
	order    []string
	inflight bool
	closed   bool

	wake      chan struct{}
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

type Option func(*Writer)

func WithLogger(logger *slog.Logger) Option {
	return func(w *Writer) { w.logger = logger }
}

func WithObserver(o metrics.Observer) Option {
	return func(w *Writer) { w.observer = o }
}

// WithWriteTimeout bounds each individual save. Non-positive values keep the default.
func WithWriteTimeout(d time.Duration) Option {
	return func(w *Writer) {
		if d > 0 {
			w.timeout = d
		}
	}
}

// NewWriter starts the write loop. Call Close to drain and stop it.
func NewWriter(adapter storage.Adapter, opts ...Option) *Writer {
	w := &Writer{
		adapter:  adapter,
		logger:   slog.New(slog.DiscardHandler),
		observer: metrics.NoopObserver{},
		timeout:  defaultWriteTimeout,
		pending:  make(map[string]string),
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	w.idle = sync.NewCond(&w.mu)
	for _, opt := range opts {
		opt(w)
	}
	go w.loop()
	return w
}

// Load reads key. A missing key yields found=false and no error; any other
// failure, including a panicking adapter, wraps ErrHydration.
func (w *Writer) Load(ctx context.Context, key string) (value string, found bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			value, found = "", false
			err = fmt.Errorf("%w: load %s: panic: %v", ErrHydration, key, r)
		}
	}()

	value, err = w.adapter.Load(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrHydration, err)
	}
	return value, true, nil
}

// Schedule queues value to be written under key and returns immediately.
// After Close it writes synchronously instead.
func (w *Writer) Schedule(key, value string) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.write(key, value)
		return
	}
	if _, queued := w.pending[key]; !queued {
		w.order = append(w.order, key)
	}
	w.pending[key] = value
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Flush blocks until every scheduled write has been attempted.
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for len(w.order) > 0 || w.inflight {
		w.idle.Wait()
	}
}

// Close drains pending writes, stops the loop and closes the adapter.
func (w *Writer) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		<-w.stopped

		// Anything scheduled while the loop was exiting is written here.
		w.mu.Lock()
		w.closed = true
		order, pending := w.order, w.pending
		w.order, w.pending = nil, make(map[string]string)
		w.mu.Unlock()
		for _, key := range order {
			w.write(key, pending[key])
		}

		err = w.adapter.Close()
	})
	return err
}

func (w *Writer) loop() {
	defer close(w.stopped)
	for {
		select {
		case <-w.wake:
			w.drain()
		case <-w.done:
			w.drain()
			return
		}
	}
}

func (w *Writer) drain() {
	for {
		w.mu.Lock()
		if len(w.order) == 0 {
			w.inflight = false
			w.idle.Broadcast()
			w.mu.Unlock()
			return
		}
		key := w.order[0]
		w.order = w.order[1:]
		value := w.pending[key]
		delete(w.pending, key)
		w.inflight = true
		w.mu.Unlock()

		w.write(key, value)
	}
}

// write performs one save and swallows its failure.
func (w *Writer) write(key, value string) {
	if err := w.save(key, value); err != nil {
		w.observer.RecordPersistenceFailure("save")
		w.logger.Warn("persist: dropping write", "key", key, "error", err)
	}
}

func (w *Writer) save(key, value string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: save %s: panic: %v", ErrWrite, key, r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if err := w.adapter.Save(ctx, key, value); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
