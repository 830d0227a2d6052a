package repomanager

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Open connects to the configured backend and brings its schema up to date.
func Open(ctx context.Context, driver, dsn string) (RepositoryManager, error) {
	var m RepositoryManager
	switch driver {
	case DriverPostgres:
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		m = NewPostgresRepositoryManager(db)
	case DriverSQLite:
		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		m = NewSQLiteRepositoryManager(db)
	case DriverMemory:
		m = NewMemoryRepositoryManager()
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}

	if err := m.RunMigrations(ctx); err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return m, nil
}
