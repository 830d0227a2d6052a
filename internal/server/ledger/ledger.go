// Package ledger records funded jobs. Recording is idempotent on the job id
// so a retried verification can never double-book a job.
package ledger

import (
	"context"
	"time"
)

// FundedJob is the ledger entry written once a payment is verified.
type FundedJob struct {
	JobID           string
	DraftID         string
	OwnerID         string
	PaymentIntentID string
	AmountCents     int64
	Currency        string
	FundedAt        time.Time
}

type Ledger interface {
	// RecordFundedJob stores job unless its JobID is already present and
	// reports whether a new entry was written.
	RecordFundedJob(ctx context.Context, job FundedJob) (bool, error)
	// Get returns the entry for jobID or common.ErrorNotFound.
	Get(ctx context.Context, jobID string) (*FundedJob, error)
}
