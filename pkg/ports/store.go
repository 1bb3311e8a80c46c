package ports

import (
	"context"

	"github.com/aretw0/samuel/pkg/domain"
)

// PuzzleStore keeps puzzle instances addressable by ID. Implementations
// return copies so callers never share state.
type PuzzleStore interface {
	// Save stores the puzzle under its ID, replacing any previous value.
	Save(ctx context.Context, state *domain.PuzzleState) error

	// Load retrieves a puzzle by ID.
	// Returns domain.ErrPuzzleNotFound if the puzzle does not exist.
	Load(ctx context.Context, id string) (*domain.PuzzleState, error)

	// Delete removes a puzzle. Deleting a missing puzzle is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored puzzles.
	List(ctx context.Context) ([]string, error)
}
