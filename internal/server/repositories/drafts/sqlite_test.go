package drafts

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/dmitrijs2005/jobwizard/internal/common"
	"github.com/dmitrijs2005/jobwizard/internal/dbx"
	"github.com/dmitrijs2005/jobwizard/internal/server/migrations"
	"github.com/dmitrijs2005/jobwizard/internal/server/models"
	"github.com/google/go-cmp/cmp"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:drafts_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.Migrations)
	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.UpContext(context.Background(), db, "sqlite"))
	return db
}

func TestSQLite_RoundTrip(t *testing.T) {
	db := openSQLite(t)
	repo := NewSQLRepository(db, dbx.SQLite)
	ctx := context.Background()

	d := sampleDraft()
	d.Data["pricing"] = map[string]any{"selectedPriceCents": json.Number("12500")}
	created, err := repo.CreateIfAbsent(ctx, d)
	require.NoError(t, err)
	require.True(t, created)

	got, err := repo.GetByOwner(ctx, "ann")
	require.NoError(t, err)
	if diff := cmp.Diff(d, got); diff != "" {
		t.Fatalf("draft mismatch (-want +got):\n%s", diff)
	}

	intent := "pi_1"
	got.Version = 3
	got.PaymentIntentID = &intent
	got.Payment = &models.PaymentIntent{ClientSecret: "sec", AmountCents: 12500, Currency: "usd"}
	require.NoError(t, repo.Update(ctx, got, 2))

	byIntent, err := repo.FindByPaymentIntent(ctx, "pi_1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), byIntent.Version)
	assert.Equal(t, int64(12500), byIntent.Payment.AmountCents)

	// Stale version.
	assert.ErrorIs(t, repo.Update(ctx, got, 2), common.ErrVersionConflict)
}

func TestSQLite_CreateIfAbsentKeepsFirst(t *testing.T) {
	db := openSQLite(t)
	repo := NewSQLRepository(db, dbx.SQLite)
	ctx := context.Background()

	first := sampleDraft()
	second := sampleDraft()
	second.ID = "d2"

	ok, err := repo.CreateIfAbsent(ctx, first)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = repo.CreateIfAbsent(ctx, second)
	require.NoError(t, err)
	require.False(t, ok)

	got, err := repo.GetByOwner(ctx, "ann")
	require.NoError(t, err)
	assert.Equal(t, "d1", got.ID)

	_, err = repo.GetForUpdate(ctx, "d2")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
