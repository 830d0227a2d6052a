// Package repomanager vends transaction-scoped repositories for the
// configured storage backend (PostgreSQL, SQLite or memory) and runs the
// embedded goose migrations.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/jobwizard/internal/dbx"
	"github.com/dmitrijs2005/jobwizard/internal/server/ledger"
	"github.com/dmitrijs2005/jobwizard/internal/server/migrations"
	"github.com/dmitrijs2005/jobwizard/internal/server/repositories/drafts"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// txAttempts bounds retries of transactions aborted by the database.
const txAttempts = 3

// SQLRepositoryManager vends database/sql backed repositories.
type SQLRepositoryManager struct {
	db           *sql.DB
	dialect      dbx.Dialect
	gooseDialect string
	dir          string
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager(db *sql.DB) *SQLRepositoryManager {
	return &SQLRepositoryManager{db: db, dialect: dbx.Postgres, gooseDialect: "pgx", dir: "postgres"}
}

// NewSQLiteRepositoryManager constructs a SQLite-backed RepositoryManager.
// SQLite allows one writer, so the pool is limited to a single connection.
func NewSQLiteRepositoryManager(db *sql.DB) *SQLRepositoryManager {
	db.SetMaxOpenConns(1)
	return &SQLRepositoryManager{db: db, dialect: dbx.SQLite, gooseDialect: "sqlite3", dir: "sqlite"}
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the manager's database.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(m.gooseDialect); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, m.db, m.dir); err != nil {
		return err
	}
	return nil
}

func (m *SQLRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	return dbx.WithTxRetry(ctx, m.db, nil, txAttempts, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, Repositories{
			Drafts: drafts.NewSQLRepository(tx, m.dialect),
			Ledger: ledger.NewSQLLedger(tx, m.dialect),
		})
	})
}

func (m *SQLRepositoryManager) Close() error {
	return m.db.Close()
}

// DB exposes the pool for health checks.
func (m *SQLRepositoryManager) DB() *sql.DB {
	return m.db
}
