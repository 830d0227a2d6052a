package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/jobwizard/internal/server/ledger"
	"github.com/dmitrijs2005/jobwizard/internal/server/repositories/drafts"
)

// MemoryRepositoryManager keeps everything in process memory. One mutex
// serializes all transactions, which makes each of them a critical section
// for every draft at once.
type MemoryRepositoryManager struct {
	mu     sync.Mutex
	store  *drafts.MemoryStore
	ledger *ledger.MemoryLedger
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		store:  drafts.NewMemoryStore(),
		ledger: ledger.NewMemoryLedger(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *MemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := m.store.Begin()
	ltx := m.ledger.Begin()
	if err := fn(ctx, Repositories{Drafts: tx, Ledger: ltx}); err != nil {
		return err
	}
	tx.Commit()
	ltx.Commit()
	return nil
}

func (m *MemoryRepositoryManager) Close() error { return nil }

// Ledger returns the shared in-memory ledger.
func (m *MemoryRepositoryManager) Ledger() *ledger.MemoryLedger {
	return m.ledger
}
