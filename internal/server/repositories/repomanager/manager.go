package repomanager

import (
	"context"

	"github.com/dmitrijs2005/jobwizard/internal/server/ledger"
	"github.com/dmitrijs2005/jobwizard/internal/server/repositories/drafts"
)

// Repositories are the stores bound to one transaction.
type Repositories struct {
	Drafts drafts.Repository
	Ledger ledger.Ledger
}

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	// WithTx runs fn as one atomic unit. Everything fn writes through r is
	// committed when fn returns nil and discarded otherwise. fn may be
	// re-run when the backend aborts the transaction.
	WithTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error
	Close() error
}
