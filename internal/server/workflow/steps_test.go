package workflow

import (
	"encoding/json"
	"testing"

	"github.com/dmitrijs2005/jobwizard/internal/server/models"
	"github.com/stretchr/testify/assert"
)

func TestNextAllowed(t *testing.T) {
	tests := []struct {
		from models.Step
		want models.Step
		ok   bool
	}{
		{models.StepProfile, models.StepDetails, true},
		{models.StepDetails, models.StepPricing, true},
		{models.StepPricing, models.StepPayment, true},
		{models.StepPayment, models.StepConfirmed, true},
		{models.StepConfirmed, "", false},
	}
	for _, tt := range tests {
		got, ok := NextAllowed(tt.from)
		assert.Equal(t, tt.ok, ok)
		assert.Equal(t, tt.want, got)
	}
}

func TestCheckTransition(t *testing.T) {
	complete := &models.Draft{CurrentStep: models.StepDetails, Data: validData()}

	assert.Empty(t, CheckTransition(complete, models.StepPricing))
	assert.NotEmpty(t, CheckTransition(complete, models.StepPayment), "skipping is not allowed")
	assert.NotEmpty(t, CheckTransition(complete, models.StepProfile), "going back is not allowed")
	assert.NotEmpty(t, CheckTransition(complete, models.StepDetails), "self transition is not allowed")

	incomplete := &models.Draft{CurrentStep: models.StepDetails, Data: validData()}
	_ = Set(incomplete.Data, PathScope, "too short")
	assert.Contains(t, CheckTransition(incomplete, models.StepPricing), "scope")
}

func TestCheckTransition_Profile(t *testing.T) {
	d := &models.Draft{CurrentStep: models.StepProfile, Data: map[string]any{}}
	assert.NotEmpty(t, CheckTransition(d, models.StepDetails))

	_ = Set(d.Data, PathDisplayName, "ann")
	assert.Empty(t, CheckTransition(d, models.StepDetails))
}

func TestCheckTransition_Pricing(t *testing.T) {
	d := &models.Draft{CurrentStep: models.StepPricing, Data: validData()}
	assert.Contains(t, CheckTransition(d, models.StepPayment), "appraisal")

	_ = Set(d.Data, PathAppraisalStatus, AppraisalReady)
	assert.Contains(t, CheckTransition(d, models.StepPayment), "price")

	_ = Set(d.Data, PathSelectedPrice, json.Number("100"))
	assert.Empty(t, CheckTransition(d, models.StepPayment))
}

func TestCheckTransition_PaymentAndConfirmed(t *testing.T) {
	d := &models.Draft{CurrentStep: models.StepPayment, Data: validData()}
	assert.NotEmpty(t, CheckTransition(d, models.StepConfirmed))

	d.CurrentStep = models.StepConfirmed
	assert.NotEmpty(t, CheckTransition(d, models.StepConfirmed))
	assert.NotEmpty(t, CheckTransition(d, models.StepProfile))
}
