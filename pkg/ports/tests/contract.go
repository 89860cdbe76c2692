package tests

import (
	"context"
	"testing"

	"github.com/aretw0/ariadne/pkg/domain"
	"github.com/aretw0/ariadne/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunGameStoreContract is a reusable test suite that verifies an adapter
// complies with ports.GameStore semantics.
func RunGameStoreContract(t *testing.T, store ports.GameStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := store.Load(ctx, "missing-game")
		assert.ErrorIs(t, err, domain.ErrGameNotFound)
	})

	t.Run("Save_Load_Roundtrip", func(t *testing.T) {
		game := &domain.Game{
			ID:       "game-1",
			Player:   "theseus",
			Layout:   "default",
			Position: domain.Coordinate{X: 2, Y: 1},
			Token:    "tok-abc",
		}
		require.NoError(t, store.Save(ctx, game))

		loaded, err := store.Load(ctx, "game-1")
		require.NoError(t, err)
		assert.Equal(t, game.Player, loaded.Player)
		assert.Equal(t, game.Position, loaded.Position)
		assert.Equal(t, game.Token, loaded.Token)
	})

	t.Run("Save_IsolatedFromCaller", func(t *testing.T) {
		game := &domain.Game{ID: "game-2", Token: "before"}
		require.NoError(t, store.Save(ctx, game))

		// Mutating the caller's struct must not leak into the store.
		game.Token = "after"

		loaded, err := store.Load(ctx, "game-2")
		require.NoError(t, err)
		assert.Equal(t, "before", loaded.Token)
	})

	t.Run("List", func(t *testing.T) {
		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, "game-1")
		assert.Contains(t, ids, "game-2")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "game-1"))
		_, err := store.Load(ctx, "game-1")
		assert.ErrorIs(t, err, domain.ErrGameNotFound)
	})
}
