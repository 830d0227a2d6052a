package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/jobwizard/internal/client/migrations"
	"github.com/dmitrijs2005/jobwizard/internal/client/repositories/snapshots"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Cache is the CLI's local sqlite database.
type Cache struct {
	db        *sql.DB
	Snapshots snapshots.Repository
}

func (c *Cache) Close() error {
	return c.db.Close()
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// OpenCache opens (creating if needed) the sqlite file at dsn and migrates it.
func OpenCache(ctx context.Context, dsn string) (*Cache, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Cache{db: db, Snapshots: snapshots.NewSQLiteRepository(db)}, nil
}
