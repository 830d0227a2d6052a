package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobwizard/internal/common"
	"github.com/dmitrijs2005/jobwizard/internal/server/appraisal"
	"github.com/dmitrijs2005/jobwizard/internal/server/ledger"
	"github.com/dmitrijs2005/jobwizard/internal/server/models"
	"github.com/dmitrijs2005/jobwizard/internal/server/payments"
	"github.com/dmitrijs2005/jobwizard/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/jobwizard/internal/server/workflow"
)

// StartAppraisal records a price suggestion for the job. A draft that has
// already been appraised is returned as is, whatever expected says.
func (s *DraftService) StartAppraisal(ctx context.Context, actor, draftID string, expected int64) (*DraftResult, error) {
	d, ch, err := s.locked(ctx, actor, draftID,
		func(ctx context.Context, _ repomanager.Repositories, cur *models.Draft) (change, error) {
			if cur.CurrentStep != models.StepPricing {
				return unchanged(OutcomeStepInvalid, "an appraisal can only be requested on the pricing step"), nil
			}
			if workflow.AppraisalRecorded(cur.Data) {
				return unchanged(OutcomeOK, ""), nil
			}
			if cur.Version != expected {
				return unchanged(OutcomeVersionConflict, "the draft was updated elsewhere"), nil
			}

			rng, err := s.estimator.Estimate(ctx, appraisal.Request{
				Title:    workflow.Title(cur),
				Scope:    workflow.Scope(cur),
				Category: workflow.Category(cur),
				Currency: workflow.Currency(cur),
			})
			if err != nil {
				return change{}, fmt.Errorf("appraisal: %w", err)
			}
			next, err := workflow.ApplyAppraisal(cur, workflow.Appraisal{
				SuggestedMinCents: rng.MinCents,
				SuggestedMaxCents: rng.MaxCents,
			}, s.now())
			if err != nil {
				return change{}, err
			}
			return write(next), nil
		})
	if err != nil {
		return nil, err
	}
	if ch.next != nil {
		s.logger.Info(ctx, "appraisal recorded", "draft_id", d.ID, "version", d.Version)
	}
	return s.draftResult(d, ch), nil
}

// CreatePaymentIntent allocates the payment for the priced job exactly
// once. Later calls replay the stored intent without a version check.
func (s *DraftService) CreatePaymentIntent(ctx context.Context, actor, draftID string, expected int64) (*PaymentIntentResult, error) {
	// Fixed before the transaction so a retried transaction reuses the
	// same idempotency key with the provider.
	jobID := s.newID()
	replayed := false

	d, ch, err := s.locked(ctx, actor, draftID,
		func(ctx context.Context, _ repomanager.Repositories, cur *models.Draft) (change, error) {
			replayed = false
			if cur.CurrentStep != models.StepPricing {
				return unchanged(OutcomeStepInvalid, "a payment can only be started from the pricing step"), nil
			}
			if cur.PaymentIntentID != nil {
				if cur.Payment == nil {
					return change{}, fmt.Errorf("draft %s has an intent id but no stored intent", cur.ID)
				}
				replayed = true
				return unchanged(OutcomeOK, ""), nil
			}
			if cur.Version != expected {
				return unchanged(OutcomeVersionConflict, "the draft was updated elsewhere"), nil
			}
			if reason := workflow.ExitViolation(cur); reason != "" {
				return unchanged(OutcomeStepInvalid, reason), nil
			}

			amount, _ := workflow.SelectedPrice(cur)
			currency := workflow.Currency(cur)
			if currency == "" {
				currency = s.opts.Currency
			}
			intent, err := s.payments.AllocateIntent(ctx, payments.IntentRequest{
				IdempotencyKey: jobID,
				DraftID:        cur.ID,
				OwnerID:        cur.OwnerID,
				AmountCents:    amount,
				Currency:       currency,
				Description:    workflow.Title(cur),
				ReturnURL:      s.opts.ReturnURL,
			})
			if err != nil {
				return change{}, fmt.Errorf("allocate payment intent: %w", err)
			}

			next := cur.Clone()
			job, intentID := jobID, intent.ID
			next.JobID = &job
			next.PaymentIntentID = &intentID
			next.Payment = &models.PaymentIntent{
				ClientSecret: intent.ClientSecret,
				ReturnURL:    intent.ReturnURL,
				AmountCents:  intent.AmountCents,
				Currency:     intent.Currency,
			}
			next.UpdatedAt = s.now().UTC()
			return write(next), nil
		})
	if err != nil {
		return nil, err
	}

	res := &PaymentIntentResult{Outcome: ch.outcome, Draft: d, Reason: ch.reason, Replayed: replayed}
	if ch.outcome == OutcomeOK {
		p := *d.Payment
		res.Intent = &p
		if !replayed {
			s.logger.Info(ctx, "payment intent created", "draft_id", d.ID, "job_id", *d.JobID,
				"amount", p.AmountCents, "currency", p.Currency)
		}
	}
	return res, nil
}

// VerifyPayment confirms the job once the provider reports the payment as
// funded. It is keyed on the payment reference, so repeated calls report
// Idempotent and change nothing.
func (s *DraftService) VerifyPayment(ctx context.Context, reference string) (*VerifyResult, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, fmt.Errorf("%w: paymentReference is required", common.ErrInvalidRequest)
	}

	var (
		res      VerifyResult
		recorded bool
		draftID  string
	)
	err := s.repos.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		recorded = false
		cur, err := r.Drafts.FindByPaymentIntent(ctx, reference)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return fmt.Errorf("%w: %s", common.ErrPaymentIntentNotFound, reference)
			}
			return err
		}
		draftID = cur.ID
		if cur.JobID == nil {
			return fmt.Errorf("draft %s has an intent but no job id", cur.ID)
		}

		if cur.IsTerminal() {
			res = VerifyResult{JobID: *cur.JobID, Funded: true, Idempotent: true}
			return nil
		}
		if cur.CurrentStep != models.StepPayment {
			return fmt.Errorf("%w: draft is at %s, payment is confirmed from %s", common.ErrStepInvalid, cur.CurrentStep, models.StepPayment)
		}

		funded, err := s.payments.IsFunded(ctx, reference)
		if err != nil {
			return fmt.Errorf("check funding: %w", err)
		}
		if !funded {
			return fmt.Errorf("%w: %s", common.ErrPaymentNotFunded, reference)
		}

		job := ledger.FundedJob{
			JobID:           *cur.JobID,
			DraftID:         cur.ID,
			OwnerID:         cur.OwnerID,
			PaymentIntentID: reference,
			Currency:        s.opts.Currency,
			FundedAt:        s.now().UTC(),
		}
		if cur.Payment != nil {
			job.AmountCents = cur.Payment.AmountCents
			job.Currency = cur.Payment.Currency
		}
		if recorded, err = r.Ledger.RecordFundedJob(ctx, job); err != nil {
			return fmt.Errorf("record funded job: %w", err)
		}

		next := cur.Clone()
		next.CurrentStep = models.StepConfirmed
		next.Version = cur.Version + 1
		next.UpdatedAt = s.now().UTC()
		if err := r.Drafts.Update(ctx, next, cur.Version); err != nil {
			return err
		}
		res = VerifyResult{JobID: *cur.JobID, Funded: true, Idempotent: false}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !res.Idempotent {
		s.logger.Info(ctx, "payment verified", "draft_id", draftID, "job_id", res.JobID, "ledger_recorded", recorded)
	}
	return &res, nil
}
