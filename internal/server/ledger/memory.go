package ledger

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/jobwizard/internal/common"
)

// MemoryLedger keeps funded jobs in process memory.
type MemoryLedger struct {
	mu   sync.Mutex
	jobs map[string]FundedJob
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{jobs: map[string]FundedJob{}}
}

func (l *MemoryLedger) RecordFundedJob(_ context.Context, job FundedJob) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.jobs[job.JobID]; ok {
		return false, nil
	}
	l.jobs[job.JobID] = job
	return true, nil
}

func (l *MemoryLedger) Get(_ context.Context, jobID string) (*FundedJob, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	j, ok := l.jobs[jobID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &j, nil
}

// Len returns the number of recorded jobs.
func (l *MemoryLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.jobs)
}

// Begin opens a staged view. Recorded jobs reach the ledger only on Commit.
func (l *MemoryLedger) Begin() *MemoryTx {
	return &MemoryTx{ledger: l, staged: map[string]FundedJob{}}
}

// MemoryTx is a Ledger whose writes are buffered until Commit.
type MemoryTx struct {
	ledger *MemoryLedger
	staged map[string]FundedJob
}

func (tx *MemoryTx) RecordFundedJob(ctx context.Context, job FundedJob) (bool, error) {
	if _, ok := tx.staged[job.JobID]; ok {
		return false, nil
	}
	if _, err := tx.ledger.Get(ctx, job.JobID); err == nil {
		return false, nil
	}
	tx.staged[job.JobID] = job
	return true, nil
}

func (tx *MemoryTx) Get(ctx context.Context, jobID string) (*FundedJob, error) {
	if j, ok := tx.staged[jobID]; ok {
		return &j, nil
	}
	return tx.ledger.Get(ctx, jobID)
}

// Commit publishes staged jobs. A job id already present keeps its entry.
func (tx *MemoryTx) Commit() {
	tx.ledger.mu.Lock()
	defer tx.ledger.mu.Unlock()
	for id, j := range tx.staged {
		if _, ok := tx.ledger.jobs[id]; !ok {
			tx.ledger.jobs[id] = j
		}
	}
	tx.staged = map[string]FundedJob{}
}
