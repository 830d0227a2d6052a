package snapshots

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE draft_snapshots (
  cache_key TEXT PRIMARY KEY,
  draft_id  TEXT NOT NULL,
  version   INTEGER NOT NULL,
  body      BLOB NOT NULL,
  saved_at  DATETIME NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func snap(draftID string, version int64, body string) Snapshot {
	return Snapshot{Key: "k", DraftID: draftID, Version: version, Body: []byte(body),
		SavedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func TestPutGet_RoundTrip(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	got, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got, "missing key is not an error")

	require.NoError(t, r.Put(ctx, snap("d1", 2, `{"v":2}`)))

	got, err = r.Get(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "d1", got.DraftID)
	assert.Equal(t, int64(2), got.Version)
	assert.Equal(t, `{"v":2}`, string(got.Body))
	assert.True(t, got.SavedAt.Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))
}

func TestPut_KeepsNewerVersion(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, snap("d1", 5, `{"v":5}`)))
	require.NoError(t, r.Put(ctx, snap("d1", 3, `{"v":3}`)))

	got, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Version, "stale snapshot must not replace a newer one")

	require.NoError(t, r.Put(ctx, snap("d1", 5, `{"v":"5b"}`)))
	got, err = r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"v":"5b"}`, string(got.Body))
}

func TestPut_NewDraftReplacesOld(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, snap("d1", 9, `{}`)))
	require.NoError(t, r.Put(ctx, snap("d2", 1, `{"fresh":true}`)))

	got, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "d2", got.DraftID)
	assert.Equal(t, int64(1), got.Version)
}

func TestDelete(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, snap("d1", 1, `{}`)))
	require.NoError(t, r.Delete(ctx, "k"))
	require.NoError(t, r.Delete(ctx, "k"), "deleting a missing key is a no-op")

	got, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestErrorsAreWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	boom := errors.New("boom")

	mock.ExpectExec("INSERT INTO draft_snapshots").WillReturnError(boom)
	err = r.Put(ctx, snap("d1", 1, `{}`))
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to put snapshot[k]")

	mock.ExpectQuery("SELECT draft_id").WithArgs("k").WillReturnError(boom)
	_, err = r.Get(ctx, "k")
	assert.ErrorIs(t, err, boom)

	mock.ExpectExec("DELETE FROM draft_snapshots").WithArgs("k").WillReturnError(boom)
	assert.ErrorIs(t, r.Delete(ctx, "k"), boom)

	require.NoError(t, mock.ExpectationsWereMet())
}
