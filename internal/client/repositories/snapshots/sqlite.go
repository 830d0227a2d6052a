package snapshots

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobwizard/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Put(ctx context.Context, s Snapshot) error {
	// A reset on the server starts a new draft, so a different draft id
	// always replaces the cached one.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO draft_snapshots (cache_key, draft_id, version, body, saved_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET
			draft_id = excluded.draft_id,
			version  = excluded.version,
			body     = excluded.body,
			saved_at = excluded.saved_at
		WHERE draft_snapshots.draft_id <> excluded.draft_id
		   OR draft_snapshots.version <= excluded.version
	`, s.Key, s.DraftID, s.Version, s.Body, s.SavedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to put snapshot[%s]: %w", s.Key, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) (*Snapshot, error) {
	s := Snapshot{Key: key}
	err := r.db.QueryRowContext(ctx,
		`SELECT draft_id, version, body, saved_at FROM draft_snapshots WHERE cache_key = ?`, key).
		Scan(&s.DraftID, &s.Version, &s.Body, &s.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot[%s]: %w", key, err)
	}
	return &s, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM draft_snapshots WHERE cache_key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot[%s]: %w", key, err)
	}
	return nil
}
