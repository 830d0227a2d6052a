package client

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobwizard/internal/client/repositories/snapshots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestOpenCache_MigratesSchema(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "cache.db")

	c, err := OpenCache(ctx, dsn)
	require.NoError(t, err)
	defer c.Close()

	assert.True(t, tableExists(t, c.db, "goose_db_version"))
	assert.True(t, tableExists(t, c.db, "draft_snapshots"))

	require.NoError(t, c.Snapshots.Put(ctx, snapshots.Snapshot{
		Key: "k", DraftID: "d1", Version: 1, Body: []byte(`{}`), SavedAt: time.Now()}))
	got, err := c.Snapshots.Get(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "d1", got.DraftID)
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "cache.db")

	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db), "second run should be a no-op")
}

func TestOpenCache_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "cache.db")

	c, err := OpenCache(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, c.Snapshots.Put(ctx, snapshots.Snapshot{
		Key: "k", DraftID: "d1", Version: 4, Body: []byte(`{}`), SavedAt: time.Now()}))
	require.NoError(t, c.Close())

	c, err = OpenCache(ctx, dsn)
	require.NoError(t, err)
	defer c.Close()

	got, err := c.Snapshots.Get(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(4), got.Version)
}
