// Package favorites tracks the set of paths a user has starred.
package favorites

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"

	"github.com/runnerr0/toolmarks/internal/metrics"
	"github.com/runnerr0/toolmarks/internal/persist"
)

// DefaultKey is the storage key the set is persisted under.
const DefaultKey = "toolmarks.favorites"

// Toggle returns members with path removed if present, appended otherwise.
// The input slice is not modified.
func Toggle(members []string, path string) []string {
	if i := slices.Index(members, path); i >= 0 {
		return slices.Delete(slices.Clone(members), i, i+1)
	}
	return append(slices.Clone(members), path)
}

// Dedupe keeps the first occurrence of every path.
func Dedupe(members []string) []string {
	seen := make(map[string]struct{}, len(members))
	out := make([]string, 0, len(members))
	for _, m := range members {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// Set owns one favorites set and keeps it persisted under its key.
// Members keep the order in which they were added.
type Set struct {
	writer   *persist.Writer
	key      string
	logger   *slog.Logger
	observer metrics.Observer

	mu      sync.Mutex
	members []string
}

type Option func(*Set)

func WithKey(key string) Option {
	return func(s *Set) { s.key = key }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Set) { s.logger = logger }
}

func WithObserver(o metrics.Observer) Option {
	return func(s *Set) { s.observer = o }
}

// New creates a set and hydrates it from storage. A missing or unreadable
// blob leaves the set empty.
func New(ctx context.Context, w *persist.Writer, opts ...Option) *Set {
	s := &Set{
		writer:   w,
		key:      DefaultKey,
		logger:   slog.New(slog.DiscardHandler),
		observer: metrics.NoopObserver{},
		members:  []string{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hydrate(ctx)
	return s
}

func (s *Set) hydrate(ctx context.Context) {
	raw, found, err := s.writer.Load(ctx, s.key)
	if err != nil {
		s.logger.Warn("favorites: starting with empty set", "key", s.key, "error", err)
		s.observer.RecordPersistenceFailure("load")
		return
	}
	if !found {
		return
	}

	var members []string
	if err := json.Unmarshal([]byte(raw), &members); err != nil {
		s.logger.Warn("favorites: discarding malformed set", "key", s.key, "error", err)
		s.observer.RecordPersistenceFailure("decode")
		return
	}

	s.members = Dedupe(members)
	s.observer.RecordHydrated("favorites", len(s.members))
	s.logger.Debug("favorites: hydrated", "key", s.key, "members", len(s.members))
}

// Toggle flips the membership of path and reports whether it is now a member.
func (s *Set) Toggle(path string) bool {
	s.mu.Lock()
	s.members = Toggle(s.members, path)
	added := slices.Contains(s.members, path)
	s.scheduleLocked()
	s.mu.Unlock()

	s.observer.RecordToggle(added)
	return added
}

// Clear removes every member.
func (s *Set) Clear() {
	s.mu.Lock()
	s.members = []string{}
	s.scheduleLocked()
	s.mu.Unlock()
}

func (s *Set) IsMember(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.members, path)
}

// Members returns a copy of the current members in insertion order.
func (s *Set) Members() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.members)
}

func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.members)
}

func (s *Set) scheduleLocked() {
	data, _ := json.Marshal(s.members)
	s.writer.Schedule(s.key, string(data))
}
