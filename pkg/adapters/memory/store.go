package memory

import (
	"context"
	"sync"

	"github.com/aretw0/samuel/pkg/domain"
)

// Store implements ports.PuzzleStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.PuzzleState
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.PuzzleState),
	}
}

// Save keeps a private copy of the puzzle.
func (s *Store) Save(ctx context.Context, state *domain.PuzzleState) error {
	copied := state.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[state.ID] = copied
	return nil
}

// Load returns a copy so callers cannot mutate stored state through the pointer.
func (s *Store) Load(ctx context.Context, id string) (*domain.PuzzleState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.data[id]
	if !ok {
		return nil, domain.ErrPuzzleNotFound
	}
	return state.Clone(), nil
}

// Delete removes the puzzle.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns the stored puzzle IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
