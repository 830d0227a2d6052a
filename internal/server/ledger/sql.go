package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobwizard/internal/common"
	"github.com/dmitrijs2005/jobwizard/internal/dbx"
)

// SQLLedger stores funded jobs in the funded_jobs table.
type SQLLedger struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLLedger(db dbx.DBTX, dialect dbx.Dialect) *SQLLedger {
	return &SQLLedger{db: db, dialect: dialect}
}

func (l *SQLLedger) RecordFundedJob(ctx context.Context, job FundedJob) (bool, error) {
	query := l.dialect.Rebind(`
		INSERT INTO funded_jobs (job_id, draft_id, owner_id, payment_intent_id, amount_cents, currency, funded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (job_id) DO NOTHING`)

	res, err := l.db.ExecContext(ctx, query,
		job.JobID, job.DraftID, job.OwnerID, job.PaymentIntentID, job.AmountCents, job.Currency, job.FundedAt.UTC())
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n == 1, nil
}

func (l *SQLLedger) Get(ctx context.Context, jobID string) (*FundedJob, error) {
	query := l.dialect.Rebind(`
		SELECT job_id, draft_id, owner_id, payment_intent_id, amount_cents, currency, funded_at
		FROM funded_jobs WHERE job_id = ?`)

	var j FundedJob
	err := l.db.QueryRowContext(ctx, query, jobID).Scan(
		&j.JobID, &j.DraftID, &j.OwnerID, &j.PaymentIntentID, &j.AmountCents, &j.Currency, &j.FundedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select funded job: %w", err)
	}
	j.FundedAt = j.FundedAt.UTC()
	return &j, nil
}
