package history

import (
	"context"
	"fmt"
	"sync"

	"github.com/jwpark-dev/homeplan/pkg/constants"
)

// ErrNotFound is returned when no entry carries the requested id.
var ErrNotFound = fmt.Errorf("history entry not found")

// Store keeps calculation history, newest first, bounded to the most recent
// entries.
type Store interface {
	// Add records an entry. When the store is at capacity the oldest
	// entry is evicted.
	Add(ctx context.Context, entry Entry) error
	// List returns all entries, newest first.
	List(ctx context.Context) ([]Entry, error)
	// ListByKind returns the entries of one kind, newest first.
	ListByKind(ctx context.Context, kind Kind) ([]Entry, error)
	// Remove deletes the entry with the given id, returning ErrNotFound
	// when no such entry exists.
	Remove(ctx context.Context, id string) error
	// Clear deletes every entry.
	Clear(ctx context.Context) error
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
	limit   int
}

// NewMemoryStore returns an empty in-memory store bounded to the default
// history size.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{limit: constants.MaxHistoryEntries}
}

func (s *MemoryStore) Add(_ context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]Entry{entry}, s.entries...)
	if len(s.entries) > s.limit {
		s.entries = s.entries[:s.limit]
	}
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *MemoryStore) ListByKind(_ context.Context, kind Kind) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Entry
	for _, entry := range s.entries {
		if entry.Kind == kind {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (s *MemoryStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, entry := range s.entries {
		if entry.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	return nil
}
