package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobwizard/internal/common"
	"github.com/dmitrijs2005/jobwizard/internal/server/attachments"
	"github.com/dmitrijs2005/jobwizard/internal/server/models"
	"github.com/dmitrijs2005/jobwizard/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/jobwizard/internal/server/workflow"
)

// GetCurrentDraft returns the actor's draft, creating it on first use.
func (s *DraftService) GetCurrentDraft(ctx context.Context, actor string) (*models.Draft, error) {
	if actor == "" {
		return nil, common.ErrorUnauthorized
	}

	var d *models.Draft
	err := s.repos.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		d, err = s.currentOrNew(ctx, r, actor)
		return err
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DraftService) currentOrNew(ctx context.Context, r repomanager.Repositories, actor string) (*models.Draft, error) {
	d, err := r.Drafts.GetByOwner(ctx, actor)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	fresh := workflow.NewDraft(s.newID(), actor, s.opts.Currency, s.now())
	created, err := r.Drafts.CreateIfAbsent(ctx, fresh)
	if err != nil {
		return nil, err
	}
	if created {
		s.logger.Info(ctx, "draft created", "draft_id", fresh.ID, "owner", actor)
		return fresh, nil
	}
	// Another request created it first.
	return r.Drafts.GetByOwner(ctx, actor)
}

// SaveField writes one allow-listed field. Saving the value already stored
// succeeds without a version bump.
func (s *DraftService) SaveField(ctx context.Context, actor, draftID string, expected int64, key string, value any) (*DraftResult, error) {
	if err := workflow.CheckWritable(key); err != nil {
		return nil, err
	}

	d, ch, err := s.guarded(ctx, actor, draftID, expected,
		func(ctx context.Context, _ repomanager.Repositories, cur *models.Draft) (change, error) {
			if cur.IsTerminal() {
				return unchanged(OutcomeStepInvalid, "the posting is already confirmed and can no longer be edited"), nil
			}
			if workflow.IsPricingPath(key) && cur.PaymentIntentID != nil {
				return unchanged(OutcomeStepInvalid, "pricing is locked once a payment has been started"), nil
			}

			next, changed, err := workflow.ApplyField(cur, key, value, s.now())
			if err != nil {
				return change{}, err
			}
			if !changed {
				s.logger.Debug(ctx, "field unchanged", "draft_id", cur.ID, "field", key)
				return unchanged(OutcomeOK, ""), nil
			}
			return write(next), nil
		})
	if err != nil {
		return nil, err
	}
	return s.draftResult(d, ch), nil
}

// AdvanceStep moves the draft one step forward when the current step is
// complete.
func (s *DraftService) AdvanceStep(ctx context.Context, actor, draftID string, expected int64, target string) (*DraftResult, error) {
	step, ok := models.ParseStep(target)
	if !ok {
		return nil, fmt.Errorf("%w: unknown step %q", common.ErrInvalidRequest, target)
	}

	d, ch, err := s.guarded(ctx, actor, draftID, expected,
		func(ctx context.Context, _ repomanager.Repositories, cur *models.Draft) (change, error) {
			if reason := workflow.CheckTransition(cur, step); reason != "" {
				return unchanged(OutcomeStepInvalid, reason), nil
			}
			next := cur.Clone()
			next.CurrentStep = step
			next.UpdatedAt = s.now().UTC()
			return write(next), nil
		})
	if err != nil {
		return nil, err
	}
	if ch.outcome == OutcomeOK {
		s.logger.Info(ctx, "step advanced", "draft_id", d.ID, "step", d.CurrentStep, "version", d.Version)
	}
	return s.draftResult(d, ch), nil
}

// RequestPhotoUpload returns a presigned upload target for a photo of the
// actor's draft. The caller stores the key via SaveField afterwards.
func (s *DraftService) RequestPhotoUpload(ctx context.Context, actor, draftID string) (*attachments.Upload, error) {
	if s.photos == nil {
		return nil, fmt.Errorf("photo uploads: %w", common.ErrNotConfigured)
	}

	d, _, err := s.locked(ctx, actor, draftID, func(context.Context, repomanager.Repositories, *models.Draft) (change, error) {
		return unchanged(OutcomeOK, ""), nil
	})
	if err != nil {
		return nil, err
	}
	if d.IsTerminal() {
		return nil, fmt.Errorf("%w: the posting is already confirmed", common.ErrInvalidRequest)
	}
	return s.photos.PresignPhotoUpload(ctx, d.ID)
}

// ResetDraft puts the actor's draft back to its freshly created content.
func (s *DraftService) ResetDraft(ctx context.Context, actor string) (*models.Draft, error) {
	return s.hook(ctx, actor, "reset", func(cur *models.Draft) (*models.Draft, error) {
		return workflow.Reset(cur, s.opts.Currency, s.now()), nil
	})
}

// SeedPricingReady parks the actor's draft at PRICING with every earlier
// step complete and a ready appraisal.
func (s *DraftService) SeedPricingReady(ctx context.Context, actor string) (*models.Draft, error) {
	return s.hook(ctx, actor, "seed_pricing_ready", func(cur *models.Draft) (*models.Draft, error) {
		return workflow.SeedPricingReady(cur, s.opts.Currency, s.now())
	})
}

func (s *DraftService) hook(ctx context.Context, actor, name string, fn func(*models.Draft) (*models.Draft, error)) (*models.Draft, error) {
	if !s.opts.TestHooksEnabled {
		return nil, common.ErrTestHooksDisabled
	}
	if actor == "" {
		return nil, common.ErrorUnauthorized
	}

	var out *models.Draft
	err := s.repos.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		cur, err := s.currentOrNew(ctx, r, actor)
		if err != nil {
			return err
		}
		next, err := fn(cur)
		if err != nil {
			return err
		}
		next.Version = cur.Version + 1
		if err := r.Drafts.Update(ctx, next, cur.Version); err != nil {
			return err
		}
		out = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Warn(ctx, "test hook applied", "hook", name, "draft_id", out.ID, "version", out.Version)
	return out, nil
}

func (s *DraftService) draftResult(d *models.Draft, ch change) *DraftResult {
	next, _ := workflow.NextAllowed(d.CurrentStep)
	return &DraftResult{
		Outcome:         ch.outcome,
		Draft:           d,
		Reason:          ch.reason,
		NextAllowedStep: next,
	}
}
