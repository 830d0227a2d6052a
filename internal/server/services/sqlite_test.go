package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/dmitrijs2005/jobwizard/internal/server/models"
	"github.com/dmitrijs2005/jobwizard/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/jobwizard/internal/server/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteFixture(t *testing.T) *fixture {
	t.Helper()
	repos, err := repomanager.Open(context.Background(), repomanager.DriverSQLite,
		"file:services_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return newFixture(t, repos, true)
}

func TestSQLite_FullWorkflow(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()

	d := f.current(t)
	d = f.save(t, d, workflow.PathTitle, "Assemble a wardrobe").Draft
	d = f.save(t, d, workflow.PathScope, "Assemble a three door wardrobe from flat pack").Draft
	d = f.save(t, d, workflow.PathPhotos, []any{"drafts/x/1.jpg"}).Draft
	require.Equal(t, int64(3), d.Version)

	adv, err := f.svc.AdvanceStep(ctx, actor, d.ID, d.Version, "PRICING")
	require.NoError(t, err)
	require.Equal(t, OutcomeOK, adv.Outcome)

	appr, err := f.svc.StartAppraisal(ctx, actor, d.ID, adv.Draft.Version)
	require.NoError(t, err)
	require.Equal(t, OutcomeOK, appr.Outcome)

	pi, err := f.svc.CreatePaymentIntent(ctx, actor, d.ID, appr.Draft.Version)
	require.NoError(t, err)
	require.Equal(t, OutcomeOK, pi.Outcome)

	replay, err := f.svc.CreatePaymentIntent(ctx, actor, d.ID, appr.Draft.Version)
	require.NoError(t, err)
	assert.Equal(t, pi.Intent.ClientSecret, replay.Intent.ClientSecret)
	assert.Equal(t, pi.Draft.Version, replay.Draft.Version)

	adv, err = f.svc.AdvanceStep(ctx, actor, d.ID, pi.Draft.Version, "PAYMENT")
	require.NoError(t, err)
	require.Equal(t, OutcomeOK, adv.Outcome)

	ref := *pi.Draft.PaymentIntentID
	require.NoError(t, f.sandbox.MarkFunded(ref))
	v1, err := f.svc.VerifyPayment(ctx, ref)
	require.NoError(t, err)
	assert.False(t, v1.Idempotent)
	v2, err := f.svc.VerifyPayment(ctx, ref)
	require.NoError(t, err)
	assert.True(t, v2.Idempotent)

	final := f.current(t)
	assert.Equal(t, models.StepConfirmed, final.CurrentStep)
	assert.Equal(t, adv.Draft.Version+1, final.Version)
	assert.Equal(t, []any{"drafts/x/1.jpg"}, mustPhotos(t, final))

	require.NoError(t, f.repos.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		job, err := r.Ledger.Get(ctx, v1.JobID)
		require.NoError(t, err)
		assert.Equal(t, pi.Intent.AmountCents, job.AmountCents)
		return nil
	}))
}

func TestSQLite_ConcurrentSaves(t *testing.T) {
	f := newSQLiteFixture(t)
	d := f.current(t)

	const n = 8
	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := f.svc.SaveField(context.Background(), actor, d.ID, d.Version, workflow.PathTitle, fmt.Sprintf("Concurrent %d", i))
			if err == nil && res.Outcome == OutcomeOK {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, int64(1), f.current(t).Version)
}

func mustPhotos(t *testing.T, d *models.Draft) any {
	t.Helper()
	v, ok := workflow.Get(d.Data, workflow.PathPhotos)
	require.True(t, ok)
	return v
}
