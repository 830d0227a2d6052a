package workflow

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobwizard/internal/server/models"
)

var adjacency = map[models.Step][]models.Step{
	models.StepProfile:   {models.StepDetails},
	models.StepDetails:   {models.StepPricing},
	models.StepPricing:   {models.StepPayment},
	models.StepPayment:   {models.StepConfirmed},
	models.StepConfirmed: nil,
}

// NextAllowed returns the single step reachable from s.
func NextAllowed(s models.Step) (models.Step, bool) {
	next := adjacency[s]
	if len(next) == 0 {
		return "", false
	}
	return next[0], true
}

func reachable(from, to models.Step) bool {
	for _, s := range adjacency[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CheckTransition decides whether d may move to target. It returns an
// empty string when allowed and a user-facing reason otherwise. Only the
// current step's exit rules are evaluated.
func CheckTransition(d *models.Draft, target models.Step) string {
	if d.IsTerminal() {
		return "the posting is already confirmed"
	}
	if !reachable(d.CurrentStep, target) {
		next, _ := NextAllowed(d.CurrentStep)
		return fmt.Sprintf("cannot move from %s to %s; the next step is %s", d.CurrentStep, target, next)
	}
	return ExitViolation(d)
}

// ExitViolation reports why the current step is not complete yet.
func ExitViolation(d *models.Draft) string {
	switch d.CurrentStep {
	case models.StepProfile:
		if strings.TrimSpace(stringAt(d.Data, PathDisplayName)) == "" {
			return "complete your profile: a display name is required"
		}
	case models.StepDetails:
		var missing []string
		if textLen(d.Data, PathTitle) < MinTitleLength {
			missing = append(missing, "a title of at least 5 characters")
		}
		if textLen(d.Data, PathScope) < MinScopeLength {
			missing = append(missing, "a scope of at least 20 characters")
		}
		if len(missing) > 0 {
			return "complete the job details: " + strings.Join(missing, " and ")
		}
	case models.StepPricing:
		if !appraisalReady(d.Data) {
			return "complete pricing: the appraisal is not ready"
		}
		if price, ok := intAt(d.Data, PathSelectedPrice); !ok || price <= 0 {
			return "complete pricing: select a positive price"
		}
	case models.StepPayment:
		return "payment is confirmed by payment verification, not by advancing"
	case models.StepConfirmed:
		return "the posting is already confirmed"
	}
	return ""
}
