// Package storagetest provides storage.Adapter fakes for tests.
package storagetest

import (
	"context"
	"errors"
	"sync"

	"github.com/runnerr0/toolmarks/internal/storage"
)

// ErrUnavailable is returned by FailingStore for every operation.
var ErrUnavailable = errors.New("storage unavailable")

// FailingStore fails every call, either by returning ErrUnavailable or, with
// Panic set, by panicking. Calls are counted.
type FailingStore struct {
	Panic bool

	mu    sync.Mutex
	loads int
	saves int
}

func (s *FailingStore) fail() error {
	if s.Panic {
		panic("storage exploded")
	}
	return ErrUnavailable
}

func (s *FailingStore) Load(_ context.Context, _ string) (string, error) {
	s.mu.Lock()
	s.loads++
	s.mu.Unlock()
	return "", s.fail()
}

func (s *FailingStore) Save(_ context.Context, _, _ string) error {
	s.mu.Lock()
	s.saves++
	s.mu.Unlock()
	return s.fail()
}

func (s *FailingStore) Remove(_ context.Context, _ string) error { return s.fail() }
func (s *FailingStore) Close() error                             { return nil }

// Saves reports how many Save calls were attempted.
func (s *FailingStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// Loads reports how many Load calls were attempted.
func (s *FailingStore) Loads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}

// RecordingStore wraps a MemoryStore and logs every successful Save as
// "key=value" in call order. When Gate is non-nil each Save first signals
// Started (if set) and then waits for Gate to be closed.
type RecordingStore struct {
	*storage.MemoryStore
	Gate    chan struct{}
	Started chan struct{}

	mu    sync.Mutex
	saves []string
}

func NewRecordingStore() *RecordingStore {
	return &RecordingStore{MemoryStore: storage.NewMemoryStore()}
}

func (s *RecordingStore) Save(ctx context.Context, key, value string) error {
	if s.Gate != nil {
		if s.Started != nil {
			select {
			case s.Started <- struct{}{}:
			default:
			}
		}
		<-s.Gate
	}
	if err := s.MemoryStore.Save(ctx, key, value); err != nil {
		return err
	}
	s.mu.Lock()
	s.saves = append(s.saves, key+"="+value)
	s.mu.Unlock()
	return nil
}

// Saves returns a copy of the recorded writes.
func (s *RecordingStore) Saves() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.saves...)
}

var (
	_ storage.Adapter = (*FailingStore)(nil)
	_ storage.Adapter = (*RecordingStore)(nil)
)
