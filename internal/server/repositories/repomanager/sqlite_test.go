package repomanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobwizard/internal/common"
	"github.com/dmitrijs2005/jobwizard/internal/server/ledger"
	"github.com/dmitrijs2005/jobwizard/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraft() *models.Draft {
	now := time.Now().UTC()
	return &models.Draft{
		ID: "d1", OwnerID: "ann", CurrentStep: models.StepDetails,
		Data: map[string]any{}, CreatedAt: now, UpdatedAt: now,
	}
}

func exerciseManager(t *testing.T, m RepositoryManager) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, m.WithTx(ctx, func(ctx context.Context, r Repositories) error {
		_, err := r.Drafts.CreateIfAbsent(ctx, newDraft())
		return err
	}))

	// A failing closure leaves nothing behind.
	boom := errors.New("boom")
	err := m.WithTx(ctx, func(ctx context.Context, r Repositories) error {
		d, err := r.Drafts.GetForUpdate(ctx, "d1")
		if err != nil {
			return err
		}
		d.Version = 1
		if err := r.Drafts.Update(ctx, d, 0); err != nil {
			return err
		}
		if _, err := r.Ledger.RecordFundedJob(ctx, ledger.FundedJob{
			JobID: "job-0", DraftID: "d1", OwnerID: "ann", PaymentIntentID: "pi_0",
			AmountCents: 100, Currency: "usd", FundedAt: time.Now(),
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	require.NoError(t, m.WithTx(ctx, func(ctx context.Context, r Repositories) error {
		d, err := r.Drafts.GetForUpdate(ctx, "d1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), d.Version, "rolled back write must not be visible")
		_, err = r.Ledger.Get(ctx, "job-0")
		assert.ErrorIs(t, err, common.ErrorNotFound, "rolled back ledger entry must not be visible")

		ok, err := r.Ledger.RecordFundedJob(ctx, ledger.FundedJob{
			JobID: "job-1", DraftID: "d1", OwnerID: "ann", PaymentIntentID: "pi_1",
			AmountCents: 100, Currency: "usd", FundedAt: time.Now(),
		})
		require.NoError(t, err)
		assert.True(t, ok)
		return nil
	}))

	require.NoError(t, m.WithTx(ctx, func(ctx context.Context, r Repositories) error {
		_, err := r.Ledger.Get(ctx, "job-1")
		require.NoError(t, err)
		_, err = r.Drafts.GetByOwner(ctx, "bob")
		assert.ErrorIs(t, err, common.ErrorNotFound)
		return nil
	}))
}

func TestSQLiteManager(t *testing.T) {
	m, err := Open(context.Background(), DriverSQLite, "file:repomanager?mode=memory&cache=shared")
	require.NoError(t, err)
	defer m.Close()

	exerciseManager(t, m)
}

func TestMemoryManager(t *testing.T) {
	m, err := Open(context.Background(), DriverMemory, "")
	require.NoError(t, err)
	defer m.Close()

	exerciseManager(t, m)
}

func TestMemoryManager_CanceledContext(t *testing.T) {
	m := NewMemoryRepositoryManager()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.WithTx(ctx, func(context.Context, Repositories) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "oracle", "")
	assert.Error(t, err)
}
