package workflow

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobwizard/internal/common"
	"github.com/dmitrijs2005/jobwizard/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestApplyField_Changes(t *testing.T) {
	d := NewDraft("d1", "ann", "usd", fixedNow)

	next, changed, err := ApplyField(d, PathTitle, "Fix sink", fixedNow)
	require.NoError(t, err)
	require.True(t, changed)

	assert.Equal(t, "Fix sink", stringAt(next.Data, PathTitle))
	assert.Equal(t, "", stringAt(d.Data, PathTitle), "input draft must not change")
	assert.NotContains(t, next.Validation, PathTitle)
	assert.Contains(t, next.Validation, PathScope)

	fs := next.FieldStates[PathTitle]
	assert.Equal(t, models.FieldSaved, fs.Status)
	require.NotNil(t, fs.SavedAt)
	assert.Equal(t, fixedNow, *fs.SavedAt)
	assert.NotEmpty(t, fs.Hash)
	assert.Equal(t, d.Version, next.Version, "version is bumped by the caller")
}

func TestApplyField_NoOp(t *testing.T) {
	d := NewDraft("d1", "ann", "usd", fixedNow)
	d, _, err := ApplyField(d, PathSelectedPrice, json.Number("500"), fixedNow)
	require.NoError(t, err)

	same, changed, err := ApplyField(d, PathSelectedPrice, json.Number("500"), fixedNow.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Same(t, d, same)
}

func TestApplyField_NoCoercion(t *testing.T) {
	d := NewDraft("d1", "ann", "usd", fixedNow)
	d, _, err := ApplyField(d, PathSelectedPrice, json.Number("500"), fixedNow)
	require.NoError(t, err)

	next, changed, err := ApplyField(d, PathSelectedPrice, "500", fixedNow)
	require.NoError(t, err)
	assert.True(t, changed, "a string is a different value than a number")
	assert.Equal(t, "500", mustGet(t, next.Data, PathSelectedPrice))
}

func TestApplyField_RejectsBadKeys(t *testing.T) {
	d := NewDraft("d1", "ann", "usd", fixedNow)
	for _, key := range []string{"details.nope", PathCurrency, PathAppraisalStatus} {
		_, _, err := ApplyField(d, key, "x", fixedNow)
		assert.ErrorIs(t, err, common.ErrInvalidFieldKey, key)
	}
}

func TestApplyAppraisal(t *testing.T) {
	d := NewDraft("d1", "ann", "usd", fixedNow)
	next, err := ApplyAppraisal(d, Appraisal{SuggestedMinCents: 10000, SuggestedMaxCents: 20000}, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, AppraisalReady, stringAt(next.Data, PathAppraisalStatus))
	price, ok := SelectedPrice(next)
	require.True(t, ok)
	assert.Equal(t, int64(15000), price)
	assert.False(t, AppraisalRecorded(d.Data))
	assert.True(t, AppraisalRecorded(next.Data))

	// An existing selection is kept.
	d2, _, err := ApplyField(d, PathSelectedPrice, json.Number("11111"), fixedNow)
	require.NoError(t, err)
	next2, err := ApplyAppraisal(d2, Appraisal{SuggestedMinCents: 10000, SuggestedMaxCents: 20000}, fixedNow)
	require.NoError(t, err)
	price, _ = SelectedPrice(next2)
	assert.Equal(t, int64(11111), price)

	_, err = ApplyAppraisal(d, Appraisal{SuggestedMinCents: 5, SuggestedMaxCents: 1}, fixedNow)
	assert.Error(t, err)
}

func TestSeedPricingReady(t *testing.T) {
	d := NewDraft("d1", "ann", "usd", fixedNow)
	d.Version = 4
	seeded, err := SeedPricingReady(d, "usd", fixedNow)
	require.NoError(t, err)

	assert.Equal(t, models.StepPricing, seeded.CurrentStep)
	assert.Equal(t, int64(4), seeded.Version)
	assert.Empty(t, seeded.Validation)
	assert.Empty(t, CheckTransition(seeded, models.StepPayment))
	assert.Equal(t, "usd", Currency(seeded))
}

func TestNewDraft(t *testing.T) {
	d := NewDraft("d1", "ann", "eur", fixedNow)
	assert.Equal(t, models.StepDetails, d.CurrentStep)
	assert.Equal(t, int64(0), d.Version)
	assert.Equal(t, "ann", stringAt(d.Data, PathDisplayName))
	assert.Equal(t, "eur", Currency(d))
	assert.Nil(t, d.JobID)
	assert.Nil(t, d.PaymentIntentID)
}

func mustGet(t *testing.T, data map[string]any, path string) any {
	t.Helper()
	v, ok := Get(data, path)
	require.True(t, ok, path)
	return v
}
