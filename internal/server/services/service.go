// Package services implements the draft workflow: a per-draft critical
// section (the guard), idempotent side-effecting actions (the broker) and
// the public operations composed from them.
package services

import (
	"time"

	"github.com/dmitrijs2005/jobwizard/internal/common"
	"github.com/dmitrijs2005/jobwizard/internal/logging"
	"github.com/dmitrijs2005/jobwizard/internal/server/appraisal"
	"github.com/dmitrijs2005/jobwizard/internal/server/attachments"
	"github.com/dmitrijs2005/jobwizard/internal/server/models"
	"github.com/dmitrijs2005/jobwizard/internal/server/payments"
	"github.com/dmitrijs2005/jobwizard/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Outcome tags the result of a mutating call. Conflicts and invalid steps
// are expected results, not errors.
type Outcome string

const (
	OutcomeOK              Outcome = "ok"
	OutcomeVersionConflict Outcome = "version_conflict"
	OutcomeStepInvalid     Outcome = "step_invalid"
)

// DraftResult is returned by every draft-mutating operation. Draft is the
// updated draft on OutcomeOK and the authoritative stored draft otherwise.
type DraftResult struct {
	Outcome         Outcome
	Draft           *models.Draft
	Reason          string
	NextAllowedStep models.Step
}

// PaymentIntentResult carries the intent on OutcomeOK.
type PaymentIntentResult struct {
	Outcome Outcome
	Draft   *models.Draft
	Reason  string
	Intent  *models.PaymentIntent
	// Replayed is true when the intent came from an earlier call.
	Replayed bool
}

// VerifyResult reports a confirmed payment.
type VerifyResult struct {
	JobID      string
	Funded     bool
	Idempotent bool
}

// Options are the service-level settings taken from config.
type Options struct {
	Currency         string
	ReturnURL        string
	TestHooksEnabled bool
}

// DraftService is the workflow façade.
type DraftService struct {
	repos     repomanager.RepositoryManager
	payments  payments.Provider
	estimator appraisal.Estimator
	photos    attachments.Presigner
	logger    logging.Logger
	opts      Options

	now   func() time.Time
	newID func() string
}

// NewDraftService wires the façade. photos may be nil when uploads are not
// configured.
func NewDraftService(repos repomanager.RepositoryManager, p payments.Provider, e appraisal.Estimator,
	photos attachments.Presigner, l logging.Logger, opts Options) *DraftService {
	if opts.Currency == "" {
		opts.Currency = common.DefaultCurrency
	}
	if l == nil {
		l = logging.Nop{}
	}
	return &DraftService{
		repos:     repos,
		payments:  p,
		estimator: e,
		photos:    photos,
		logger:    l.With("module", "draft_service"),
		opts:      opts,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}
