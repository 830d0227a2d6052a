package workflow

import (
	"time"

	"github.com/dmitrijs2005/jobwizard/internal/server/models"
)

// SeedData is the data tree of a freshly created draft.
func SeedData(displayName, currency string) map[string]any {
	return map[string]any{
		"profile": map[string]any{
			"displayName": displayName,
		},
		"details": map[string]any{
			"title": "",
			"scope": "",
		},
		"pricing": map[string]any{
			"currency": currency,
		},
	}
}

// NewDraft builds the lazily-created draft of an actor. New drafts start at
// DETAILS because the profile is taken from the identity provider.
func NewDraft(id, owner, currency string, now time.Time) *models.Draft {
	data := SeedData(owner, currency)
	now = now.UTC()
	return &models.Draft{
		ID:          id,
		OwnerID:     owner,
		Version:     0,
		CurrentStep: models.StepDetails,
		Data:        data,
		Validation:  Validate(data),
		FieldStates: map[string]models.FieldState{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Reset returns d emptied back to its initial content. Identity, version
// and creation time are kept so the version stays monotonic.
func Reset(d *models.Draft, currency string, now time.Time) *models.Draft {
	fresh := NewDraft(d.ID, d.OwnerID, currency, now)
	fresh.Version = d.Version
	fresh.CreatedAt = d.CreatedAt
	return fresh
}

// SeedPricingReady returns d with complete details, a ready appraisal and a
// selected price, parked at PRICING. Used by test hooks only.
func SeedPricingReady(d *models.Draft, currency string, now time.Time) (*models.Draft, error) {
	next := Reset(d, currency, now)
	next.CurrentStep = models.StepPricing
	_ = Set(next.Data, PathTitle, "Replace kitchen faucet")
	_ = Set(next.Data, PathScope, "Remove the old faucet, install the new one and check for leaks.")
	_ = Set(next.Data, PathCategory, "plumbing")
	return ApplyAppraisal(next, Appraisal{SuggestedMinCents: 12000, SuggestedMaxCents: 18000}, now)
}
