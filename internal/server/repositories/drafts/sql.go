package drafts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobwizard/internal/common"
	"github.com/dmitrijs2005/jobwizard/internal/dbx"
	"github.com/dmitrijs2005/jobwizard/internal/server/models"
)

const selectColumns = `SELECT id, owner_id, version, current_step, data, validation, field_states,
	job_id, payment_intent_id, payment, created_at, updated_at FROM drafts`

// SQLRepository implements draft storage over a dbx.DBTX (*sql.DB or *sql.Tx)
// for Postgres and SQLite.
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

// NewSQLRepository constructs a repository bound to the given DBTX.
func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) GetByOwner(ctx context.Context, ownerID string) (*models.Draft, error) {
	return r.selectOne(ctx, selectColumns+` WHERE owner_id = ?`, ownerID)
}

func (r *SQLRepository) GetForUpdate(ctx context.Context, id string) (*models.Draft, error) {
	return r.selectOne(ctx, selectColumns+` WHERE id = ?`+r.dialect.ForUpdate(), id)
}

func (r *SQLRepository) FindByPaymentIntent(ctx context.Context, intentID string) (*models.Draft, error) {
	return r.selectOne(ctx, selectColumns+` WHERE payment_intent_id = ?`+r.dialect.ForUpdate(), intentID)
}

func (r *SQLRepository) CreateIfAbsent(ctx context.Context, d *models.Draft) (bool, error) {
	enc, err := encodeRow(d)
	if err != nil {
		return false, err
	}
	query := r.dialect.Rebind(`
		INSERT INTO drafts (id, owner_id, version, current_step, data, validation, field_states,
			job_id, payment_intent_id, payment, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (owner_id) DO NOTHING`)

	res, err := r.db.ExecContext(ctx, query,
		d.ID, d.OwnerID, d.Version, string(d.CurrentStep),
		string(enc.data), string(enc.validation), string(enc.fieldStates),
		d.JobID, d.PaymentIntentID, nullableJSON(enc.payment),
		d.CreatedAt.UTC(), d.UpdatedAt.UTC())
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n == 1, nil
}

// Update is a compare-and-swap on version: zero affected rows means another
// writer got there first.
func (r *SQLRepository) Update(ctx context.Context, d *models.Draft, expectedVersion int64) error {
	enc, err := encodeRow(d)
	if err != nil {
		return err
	}
	query := r.dialect.Rebind(`
		UPDATE drafts SET
			version = ?, current_step = ?, data = ?, validation = ?, field_states = ?,
			job_id = ?, payment_intent_id = ?, payment = ?, updated_at = ?
		WHERE id = ? AND version = ?`)

	res, err := r.db.ExecContext(ctx, query,
		d.Version, string(d.CurrentStep),
		string(enc.data), string(enc.validation), string(enc.fieldStates),
		d.JobID, d.PaymentIntentID, nullableJSON(enc.payment), d.UpdatedAt.UTC(),
		d.ID, expectedVersion)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrVersionConflict
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

func (r *SQLRepository) selectOne(ctx context.Context, query string, arg any) (*models.Draft, error) {
	var (
		d                      models.Draft
		step                   string
		enc                    row
		jobID, paymentIntentID sql.NullString
	)
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), arg).Scan(
		&d.ID, &d.OwnerID, &d.Version, &step, &enc.data, &enc.validation, &enc.fieldStates,
		&jobID, &paymentIntentID, &enc.payment, &d.CreatedAt, &d.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select draft: %w", err)
	}

	d.CurrentStep = models.Step(step)
	if jobID.Valid {
		d.JobID = &jobID.String
	}
	if paymentIntentID.Valid {
		d.PaymentIntentID = &paymentIntentID.String
	}
	if err := enc.decodeInto(&d); err != nil {
		return nil, err
	}
	d.CreatedAt = d.CreatedAt.UTC()
	d.UpdatedAt = d.UpdatedAt.UTC()
	return &d, nil
}

func nullableJSON(b []byte) any {
	if b == nil {
		return nil
	}
	return string(b)
}
