package store

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps results in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	results []Result
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SaveResult(_ context.Context, r Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.results {
		if existing.ID == r.ID {
			return ErrDuplicateResult
		}
	}
	s.results = append(s.results, r)
	return nil
}

func (s *MemoryStore) ListResults(_ context.Context, limit int) ([]Result, error) {
	s.mu.Lock()
	out := slices.Clone(s.results)
	s.mu.Unlock()

	slices.SortStableFunc(out, func(a, b Result) int {
		return b.FinishedAt.Compare(a.FinishedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
