// Package snapshots keeps the last draft each CLI profile saw, so the
// draft can still be shown while the server is unreachable.
package snapshots

import (
	"context"
	"time"
)

// Snapshot is one cached draft. Body is the draft as the server sent it.
type Snapshot struct {
	Key     string
	DraftID string
	Version int64
	Body    []byte
	SavedAt time.Time
}

type Repository interface {
	// Put stores s unless a snapshot with a higher version is already cached.
	Put(ctx context.Context, s Snapshot) error
	// Get returns nil without error when nothing is cached under key.
	Get(ctx context.Context, key string) (*Snapshot, error)
	Delete(ctx context.Context, key string) error
}
