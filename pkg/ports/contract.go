package ports

import (
	"context"
	"testing"

	"github.com/aretw0/samuel/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunPuzzleStoreContract runs a suite of tests to verify that a PuzzleStore implementation
// adheres to the defined interface contract.
func RunPuzzleStoreContract(t *testing.T, store PuzzleStore) {
	ctx := context.Background()
	id := "contract-test-" + t.Name()

	t.Run("Save and Load", func(t *testing.T) {
		state := domain.NewPuzzleState(id, domain.Snapshot{BatteryCount: 3, ModuleCount: 11})
		state.Stage = 2
		state.Cross.MarkRedMissing()
		state.Submissions = append(state.Submissions, domain.ColouredSymbol{Colour: domain.Blue, Symbol: domain.Dash})

		require.NoError(t, store.Save(ctx, state))

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, state, loaded)
	})

	t.Run("Loaded copies are isolated", func(t *testing.T) {
		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		loaded.Stage = 4
		loaded.Submissions[0].Colour = domain.Red

		again, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 2, again.Stage)
		assert.Equal(t, domain.Blue, again.Submissions[0].Colour)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+id)
		assert.ErrorIs(t, err, domain.ErrPuzzleNotFound)
	})

	t.Run("List", func(t *testing.T) {
		other := id + "-other"
		require.NoError(t, store.Save(ctx, domain.NewPuzzleState(other, domain.Snapshot{})))
		defer func() { _ = store.Delete(ctx, other) }()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id)
		assert.Contains(t, ids, other)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, id))

		_, err := store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrPuzzleNotFound, "Load after Delete should return ErrPuzzleNotFound")
		assert.NoError(t, store.Delete(ctx, id), "deleting twice is not an error")
	})
}
