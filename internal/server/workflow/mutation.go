package workflow

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/jobwizard/internal/cryptox"
	"github.com/dmitrijs2005/jobwizard/internal/server/models"
)

// ApplyField produces the next draft for a single field write. changed is
// false when the proposed value hashes equal to the stored one; the input
// draft is then returned as is. The version is left to the caller.
func ApplyField(d *models.Draft, key string, value any, now time.Time) (next *models.Draft, changed bool, err error) {
	if err := CheckWritable(key); err != nil {
		return nil, false, err
	}

	proposed, err := cryptox.ContentHash(value)
	if err != nil {
		return nil, false, err
	}
	if current, ok := Get(d.Data, key); ok {
		stored, err := cryptox.ContentHash(current)
		if err != nil {
			return nil, false, err
		}
		if stored == proposed {
			return d, false, nil
		}
	}

	next = d.Clone()
	if next.Data == nil {
		next.Data = map[string]any{}
	}
	if err := Set(next.Data, key, value); err != nil {
		return nil, false, err
	}
	next.Validation = Validate(next.Data)

	if next.FieldStates == nil {
		next.FieldStates = map[string]models.FieldState{}
	}
	savedAt := now.UTC()
	next.FieldStates[key] = models.FieldState{Status: models.FieldSaved, SavedAt: &savedAt, Hash: proposed}
	next.UpdatedAt = savedAt

	return next, true, nil
}

// Appraisal is the outcome of an appraisal request.
type Appraisal struct {
	SuggestedMinCents int64
	SuggestedMaxCents int64
}

// ApplyAppraisal records a ready appraisal and preselects the midpoint price
// when the user has not picked one yet.
func ApplyAppraisal(d *models.Draft, a Appraisal, now time.Time) (*models.Draft, error) {
	if a.SuggestedMinCents <= 0 || a.SuggestedMaxCents < a.SuggestedMinCents {
		return nil, fmt.Errorf("invalid appraisal range %d..%d", a.SuggestedMinCents, a.SuggestedMaxCents)
	}

	next := d.Clone()
	if next.Data == nil {
		next.Data = map[string]any{}
	}
	writes := []struct {
		path  string
		value any
	}{
		{PathAppraisalStatus, AppraisalReady},
		{PathSuggestedMinCents, Number(a.SuggestedMinCents)},
		{PathSuggestedMaxCents, Number(a.SuggestedMaxCents)},
		{PathAppraisedAt, now.UTC().Format(time.RFC3339)},
	}
	for _, w := range writes {
		if err := Set(next.Data, w.path, w.value); err != nil {
			return nil, err
		}
	}
	if _, ok := Get(next.Data, PathSelectedPrice); !ok {
		mid := a.SuggestedMinCents + (a.SuggestedMaxCents-a.SuggestedMinCents)/2
		if err := Set(next.Data, PathSelectedPrice, Number(mid)); err != nil {
			return nil, err
		}
	}
	next.Validation = Validate(next.Data)
	next.UpdatedAt = now.UTC()
	return next, nil
}

// SelectedPrice returns the chosen price in minor units.
func SelectedPrice(d *models.Draft) (int64, bool) {
	return intAt(d.Data, PathSelectedPrice)
}

// Currency returns the draft currency.
func Currency(d *models.Draft) string {
	return stringAt(d.Data, PathCurrency)
}

// Title returns the job title, used to describe payments.
func Title(d *models.Draft) string {
	return stringAt(d.Data, PathTitle)
}

// Scope returns the job scope text.
func Scope(d *models.Draft) string {
	return stringAt(d.Data, PathScope)
}

// Category returns the job category.
func Category(d *models.Draft) string {
	return stringAt(d.Data, PathCategory)
}
