package drafts

import (
	"context"

	"github.com/dmitrijs2005/jobwizard/internal/common"
	"github.com/dmitrijs2005/jobwizard/internal/server/models"
)

// MemoryStore keeps committed drafts in process memory. It is not safe for
// concurrent use on its own: repomanager serializes transactions over it.
type MemoryStore struct {
	byID     map[string]*models.Draft
	byOwner  map[string]string
	byIntent map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:     map[string]*models.Draft{},
		byOwner:  map[string]string{},
		byIntent: map[string]string{},
	}
}

// Begin opens a staged view. Writes are invisible to the store until Commit.
func (s *MemoryStore) Begin() *MemoryTx {
	return &MemoryTx{store: s, staged: map[string]*models.Draft{}}
}

// MemoryTx is a Repository whose writes are buffered until Commit.
type MemoryTx struct {
	store  *MemoryStore
	staged map[string]*models.Draft
}

// Commit publishes staged drafts to the store.
func (tx *MemoryTx) Commit() {
	for id, d := range tx.staged {
		if prev, ok := tx.store.byID[id]; ok && prev.PaymentIntentID != nil {
			delete(tx.store.byIntent, *prev.PaymentIntentID)
		}
		tx.store.byID[id] = d
		tx.store.byOwner[d.OwnerID] = id
		if d.PaymentIntentID != nil {
			tx.store.byIntent[*d.PaymentIntentID] = id
		}
	}
	tx.staged = map[string]*models.Draft{}
}

func (tx *MemoryTx) lookup(id string) (*models.Draft, bool) {
	if d, ok := tx.staged[id]; ok {
		return d, true
	}
	d, ok := tx.store.byID[id]
	return d, ok
}

func (tx *MemoryTx) GetByOwner(_ context.Context, ownerID string) (*models.Draft, error) {
	for _, d := range tx.staged {
		if d.OwnerID == ownerID {
			return d.Clone(), nil
		}
	}
	id, ok := tx.store.byOwner[ownerID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	d, _ := tx.lookup(id)
	return d.Clone(), nil
}

func (tx *MemoryTx) GetForUpdate(_ context.Context, id string) (*models.Draft, error) {
	d, ok := tx.lookup(id)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return d.Clone(), nil
}

func (tx *MemoryTx) FindByPaymentIntent(_ context.Context, intentID string) (*models.Draft, error) {
	for _, d := range tx.staged {
		if d.PaymentIntentID != nil && *d.PaymentIntentID == intentID {
			return d.Clone(), nil
		}
	}
	id, ok := tx.store.byIntent[intentID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	d, _ := tx.lookup(id)
	if d.PaymentIntentID == nil || *d.PaymentIntentID != intentID {
		return nil, common.ErrorNotFound
	}
	return d.Clone(), nil
}

func (tx *MemoryTx) CreateIfAbsent(ctx context.Context, d *models.Draft) (bool, error) {
	if _, err := tx.GetByOwner(ctx, d.OwnerID); err == nil {
		return false, nil
	}
	if _, exists := tx.lookup(d.ID); exists {
		return false, nil
	}
	tx.staged[d.ID] = d.Clone()
	return true, nil
}

func (tx *MemoryTx) Update(_ context.Context, d *models.Draft, expectedVersion int64) error {
	cur, ok := tx.lookup(d.ID)
	if !ok || cur.Version != expectedVersion {
		return common.ErrVersionConflict
	}
	next := d.Clone()
	next.OwnerID = cur.OwnerID
	next.CreatedAt = cur.CreatedAt
	tx.staged[d.ID] = next
	return nil
}
