package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meikuraledutech/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore connects to DATABASE_URL and recreates the schema.
// Tests are skipped when no database is configured.
func newTestStore(t *testing.T) *PGStore {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	store := New(pool)
	require.NoError(t, store.DropSchema(ctx))
	require.NoError(t, store.CreateSchema(ctx))
	t.Cleanup(func() { _ = store.DropSchema(context.Background()) })
	return store
}

func TestSeedDefaultsKeepsOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SeedDefaults(ctx))
	// Seeding twice must not duplicate or reorder.
	require.NoError(t, store.SeedDefaults(ctx))

	actions, err := store.ListActions(ctx)
	require.NoError(t, err)
	assert.Equal(t, workflow.DefaultActions(), actions)
}

func TestPutGetDeleteAction(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := &workflow.Action{ID: "archive_file", Label: "Archive File"}
	require.NoError(t, store.PutAction(ctx, a))

	got, err := store.GetAction(ctx, "archive_file")
	require.NoError(t, err)
	assert.Equal(t, "Archive File", got.Label)
	assert.Empty(t, got.Params)

	a.Label = "Archive Document"
	a.Params = []string{"path"}
	require.NoError(t, store.PutAction(ctx, a))
	got, err = store.GetAction(ctx, "archive_file")
	require.NoError(t, err)
	assert.Equal(t, []string{"path"}, got.Params)

	require.NoError(t, store.DeleteAction(ctx, "archive_file"))
	_, err = store.GetAction(ctx, "archive_file")
	assert.ErrorIs(t, err, workflow.ErrActionNotFound)

	// Deleting a missing action is not an error.
	assert.NoError(t, store.DeleteAction(ctx, "archive_file"))
}

func TestStoreFeedsFetchCatalog(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.SeedDefaults(ctx))

	catalog, err := workflow.FetchCatalog(ctx, store)
	require.NoError(t, err)

	a, ok := workflow.FindAction(catalog, "notify_slack")
	require.True(t, ok)
	assert.Equal(t, "Send Slack Notification", a.Label)
}
