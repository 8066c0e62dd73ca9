package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("returns items of one user in insertion order", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.AddTodo(ctx, "alice", "Learn Spring"))
		require.NoError(t, store.AddTodo(ctx, "bob", "Walk the dog"))
		require.NoError(t, store.AddTodo(ctx, "alice", "Learn to Dance"))

		items, err := store.RetrieveTodos(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, []string{"Learn Spring", "Learn to Dance"}, items)
	})

	t.Run("unknown user yields an empty snapshot", func(t *testing.T) {
		store := NewMemoryStore()

		items, err := store.RetrieveTodos(ctx, "nobody")

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("delete removes the first occurrence only", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.AddTodo(ctx, "alice", "Buy milk"))
		require.NoError(t, store.AddTodo(ctx, "alice", "Learn Spring"))
		require.NoError(t, store.AddTodo(ctx, "alice", "Buy milk"))

		require.NoError(t, store.DeleteTodo(ctx, "Buy milk"))

		items, err := store.RetrieveTodos(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, []string{"Learn Spring", "Buy milk"}, items)
	})

	t.Run("delete of unknown text is an error", func(t *testing.T) {
		store := NewMemoryStore()

		err := store.DeleteTodo(ctx, "Does not exist")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}
