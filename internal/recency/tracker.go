// Package recency tracks the most recently visited paths.
package recency

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/runnerr0/toolmarks/internal/clock"
	"github.com/runnerr0/toolmarks/internal/metrics"
	"github.com/runnerr0/toolmarks/internal/persist"
)

// DefaultKey is the storage key the log is persisted under.
const DefaultKey = "toolmarks.history"

// Tracker owns one recency log and keeps it persisted under its key.
type Tracker struct {
	writer   *persist.Writer
	key      string
	max      int
	clock    clock.Clock
	logger   *slog.Logger
	observer metrics.Observer

	mu  sync.Mutex
	log []HistoryEntry
}

type Option func(*Tracker)

func WithKey(key string) Option {
	return func(t *Tracker) { t.key = key }
}

// WithMaxItems sets the log capacity. Non-positive values keep MaxHistoryItems.
func WithMaxItems(n int) Option {
	return func(t *Tracker) {
		if n > 0 {
			t.max = n
		}
	}
}

func WithClock(c clock.Clock) Option {
	return func(t *Tracker) { t.clock = c }
}

func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) { t.logger = logger }
}

func WithObserver(o metrics.Observer) Option {
	return func(t *Tracker) { t.observer = o }
}

// New creates a tracker and hydrates it from storage. Hydration never fails:
// a missing or unreadable blob leaves the log empty.
func New(ctx context.Context, w *persist.Writer, opts ...Option) *Tracker {
	t := &Tracker{
		writer:   w,
		key:      DefaultKey,
		max:      MaxHistoryItems,
		clock:    clock.RealClock{},
		logger:   slog.New(slog.DiscardHandler),
		observer: metrics.NoopObserver{},
		log:      []HistoryEntry{},
	}
	for _, opt := range opts {
		opt(t)
	}
	t.hydrate(ctx)
	return t
}

func (t *Tracker) hydrate(ctx context.Context) {
	raw, found, err := t.writer.Load(ctx, t.key)
	if err != nil {
		t.logger.Warn("recency: starting with empty history", "key", t.key, "error", err)
		t.observer.RecordPersistenceFailure("load")
		return
	}
	if !found {
		return
	}

	var entries []HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		t.logger.Warn("recency: discarding malformed history", "key", t.key, "error", err)
		t.observer.RecordPersistenceFailure("decode")
		return
	}

	t.log = Normalize(entries, t.max)
	t.observer.RecordHydrated("history", len(t.log))
	t.logger.Debug("recency: hydrated", "key", t.key, "entries", len(t.log))
}

// RecordVisit moves path to the front of the log, stamped with the current time.
func (t *Tracker) RecordVisit(path string) {
	t.mu.Lock()
	t.log = Visit(t.log, path, clock.Millis(t.clock.Now()), t.max)
	t.scheduleLocked()
	t.mu.Unlock()

	t.observer.RecordVisit()
}

// Clear empties the log.
func (t *Tracker) Clear() {
	t.mu.Lock()
	t.log = []HistoryEntry{}
	t.scheduleLocked()
	t.mu.Unlock()
}

// RecentPaths returns visited paths, most recent first.
func (t *Tracker) RecentPaths() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Paths(t.log)
}

// Snapshot returns a copy of the log, most recent first.
func (t *Tracker) Snapshot() []HistoryEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]HistoryEntry, len(t.log))
	copy(out, t.log)
	return out
}

// Len reports the number of entries in the log.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.log)
}

// scheduleLocked queues the current log. Holding mu keeps scheduled
// snapshots in mutation order.
func (t *Tracker) scheduleLocked() {
	// []HistoryEntry of plain fields always marshals
	data, _ := json.Marshal(t.log)
	t.writer.Schedule(t.key, string(data))
}
