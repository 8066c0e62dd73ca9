package database

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qlindev/todosweep/testutils"
)

// setupTestStore creates a Store backed by an in-memory SQLite database
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	db := testutils.NewTestDB(t)
	require.NoError(t, db.AutoMigrate(&TodoEntry{}))
	t.Cleanup(func() {
		testutils.CloseTestDB(t, db)
	})

	return &Store{db: db}
}

func TestOpen(t *testing.T) {
	t.Run("successful in-memory store creation", func(t *testing.T) {
		store, err := Open(":memory:")

		assert.NoError(t, err)
		assert.NotNil(t, store)
	})

	t.Run("successful file-based store creation", func(t *testing.T) {
		tmpFile := testutils.TempFile(t, "todosweep_test_*.db")

		store, err := Open(tmpFile.Name())

		assert.NoError(t, err)
		assert.NotNil(t, store)

		// Verify the database file exists
		_, err = os.Stat(tmpFile.Name())
		assert.NoError(t, err)
	})

	t.Run("invalid database path", func(t *testing.T) {
		store, err := Open("/invalid/path/that/does/not/exist/test.db")

		assert.Error(t, err)
		assert.Nil(t, store)
		assert.Contains(t, err.Error(), "failed to open SQLite database")
	})
}

func TestStore_AddTodoAndRetrieveTodos(t *testing.T) {
	ctx := context.Background()

	t.Run("returns items of one user in insertion order", func(t *testing.T) {
		store := setupTestStore(t)

		require.NoError(t, store.AddTodo(ctx, "alice", "Learn Spring MVC"))
		require.NoError(t, store.AddTodo(ctx, "alice", "Learn Spring"))
		require.NoError(t, store.AddTodo(ctx, "bob", "Walk the dog"))
		require.NoError(t, store.AddTodo(ctx, "alice", "Learn to Dance"))

		items, err := store.RetrieveTodos(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, []string{"Learn Spring MVC", "Learn Spring", "Learn to Dance"}, items)
	})

	t.Run("unknown user yields an empty snapshot", func(t *testing.T) {
		store := setupTestStore(t)

		items, err := store.RetrieveTodos(ctx, "nobody")

		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestStore_DeleteTodo(t *testing.T) {
	ctx := context.Background()

	t.Run("removes one item by exact text", func(t *testing.T) {
		store := setupTestStore(t)
		require.NoError(t, store.AddTodo(ctx, "alice", "Learn Spring"))
		require.NoError(t, store.AddTodo(ctx, "alice", "Learn to Dance"))

		err := store.DeleteTodo(ctx, "Learn to Dance")

		require.NoError(t, err)
		items, err := store.RetrieveTodos(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, []string{"Learn Spring"}, items)
	})

	t.Run("removes only the oldest of duplicated texts", func(t *testing.T) {
		store := setupTestStore(t)
		require.NoError(t, store.AddTodo(ctx, "alice", "Buy milk"))
		require.NoError(t, store.AddTodo(ctx, "alice", "Learn Spring"))
		require.NoError(t, store.AddTodo(ctx, "alice", "Buy milk"))

		err := store.DeleteTodo(ctx, "Buy milk")

		require.NoError(t, err)
		items, err := store.RetrieveTodos(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, []string{"Learn Spring", "Buy milk"}, items)
	})

	t.Run("unknown text is an error", func(t *testing.T) {
		store := setupTestStore(t)
		require.NoError(t, store.AddTodo(ctx, "alice", "Learn Spring"))

		err := store.DeleteTodo(ctx, "Does not exist")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to locate entry")
	})
}
