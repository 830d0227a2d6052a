// Package drafts persists workflow drafts. Every implementation is meant to
// be used inside one repomanager transaction, which is the draft's critical
// section.
package drafts

import (
	"context"

	"github.com/dmitrijs2005/jobwizard/internal/server/models"
)

type Repository interface {
	// GetByOwner returns the actor's draft or common.ErrorNotFound.
	GetByOwner(ctx context.Context, ownerID string) (*models.Draft, error)
	// GetForUpdate loads a draft by id and locks it until the transaction ends
	// where the backend supports row locks.
	GetForUpdate(ctx context.Context, id string) (*models.Draft, error)
	// FindByPaymentIntent locks and returns the draft holding intentID.
	FindByPaymentIntent(ctx context.Context, intentID string) (*models.Draft, error)
	// CreateIfAbsent inserts d unless its owner already has a draft.
	// It reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, d *models.Draft) (bool, error)
	// Update stores d when the persisted version still equals expectedVersion,
	// otherwise it returns common.ErrVersionConflict and writes nothing.
	Update(ctx context.Context, d *models.Draft, expectedVersion int64) error
}
