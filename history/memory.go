package history

import (
	"context"
	"sync"
)

// MemoryStore keeps records in process memory.
// It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record
	max     int
}

// NewMemoryStore returns a store holding at most max records; older records
// are dropped first. A max <= 0 keeps everything.
func NewMemoryStore(max int) *MemoryStore {
	return &MemoryStore{max: max}
}

// Record appends r.
func (s *MemoryStore) Record(_ context.Context, r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, r)
	if s.max > 0 && len(s.records) > s.max {
		s.records = append([]Record(nil), s.records[len(s.records)-s.max:]...)
	}
	return nil
}

// List returns records newest first.
func (s *MemoryStore) List(_ context.Context, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.records)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]Record, 0, n)
	for i := len(s.records) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}

// Clear removes every record.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	return nil
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
