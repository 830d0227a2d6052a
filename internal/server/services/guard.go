package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobwizard/internal/common"
	"github.com/dmitrijs2005/jobwizard/internal/server/models"
	"github.com/dmitrijs2005/jobwizard/internal/server/repositories/repomanager"
)

// change is what a mutation decided for a locked draft. A nil next means
// nothing is written and the version stays.
type change struct {
	next    *models.Draft
	outcome Outcome
	reason  string
}

func unchanged(o Outcome, reason string) change {
	return change{outcome: o, reason: reason}
}

func write(next *models.Draft) change {
	return change{next: next, outcome: OutcomeOK}
}

type mutation func(ctx context.Context, r repomanager.Repositories, cur *models.Draft) (change, error)

// CheckExpectedVersion validates the client-supplied version. It must be
// present and non-negative; anything else is a malformed request.
func CheckExpectedVersion(v *int64) (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: expectedVersion is required", common.ErrInvalidRequest)
	}
	if *v < 0 {
		return 0, fmt.Errorf("%w: expectedVersion must be a non-negative integer", common.ErrInvalidRequest)
	}
	return *v, nil
}

// locked runs fn inside the draft's critical section. The draft is loaded
// with a row lock, handed to fn, and fn's decision is persisted with a
// compare-and-swap on the loaded version. Ownership mismatches look like a
// missing draft. An empty actor skips the ownership check.
func (s *DraftService) locked(ctx context.Context, actor, draftID string, fn mutation) (*models.Draft, change, error) {
	if strings.TrimSpace(draftID) == "" {
		return nil, change{}, fmt.Errorf("%w: draftId is required", common.ErrInvalidRequest)
	}

	var (
		result *models.Draft
		ch     change
	)
	err := s.repos.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		cur, err := r.Drafts.GetForUpdate(ctx, draftID)
		if err != nil {
			return err
		}
		if actor != "" && cur.OwnerID != actor {
			return common.ErrorNotFound
		}

		ch, err = fn(ctx, r, cur)
		if err != nil {
			return err
		}
		if ch.next == nil {
			result = cur
			return nil
		}

		ch.next.Version = cur.Version + 1
		if err := r.Drafts.Update(ctx, ch.next, cur.Version); err != nil {
			return err
		}
		result = ch.next
		return nil
	})

	if errors.Is(err, common.ErrVersionConflict) {
		// Lost a race the row lock could not prevent; report the winner.
		fresh, ferr := s.load(ctx, draftID)
		if ferr != nil {
			return nil, change{}, ferr
		}
		return fresh, unchanged(OutcomeVersionConflict, "the draft was updated elsewhere"), nil
	}
	if err != nil {
		return nil, change{}, err
	}
	return result, ch, nil
}

// guarded is locked plus the optimistic version check.
func (s *DraftService) guarded(ctx context.Context, actor, draftID string, expected int64, fn mutation) (*models.Draft, change, error) {
	return s.locked(ctx, actor, draftID, func(ctx context.Context, r repomanager.Repositories, cur *models.Draft) (change, error) {
		if cur.Version != expected {
			s.logger.Debug(ctx, "version conflict", "draft_id", cur.ID, "expected", expected, "actual", cur.Version)
			return unchanged(OutcomeVersionConflict, "the draft was updated elsewhere"), nil
		}
		return fn(ctx, r, cur)
	})
}

func (s *DraftService) load(ctx context.Context, draftID string) (*models.Draft, error) {
	var d *models.Draft
	err := s.repos.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		d, err = r.Drafts.GetForUpdate(ctx, draftID)
		return err
	})
	return d, err
}
