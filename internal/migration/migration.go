package migration

import (
	"context"
	"fmt"

	"govariate/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createVariateRunsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create variate_runs table")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	return nil
}

func (r *MigrationRunner) createVariateRunsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS variate_runs (
			run_id UUID PRIMARY KEY,
			kind VARCHAR(32) NOT NULL,
			params JSONB NOT NULL,
			seed BIGINT NOT NULL,
			draw_count INTEGER NOT NULL,
			fingerprint VARCHAR(64) NOT NULL,
			summary JSONB,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_variate_runs_kind ON variate_runs(kind)",
		"CREATE INDEX IF NOT EXISTS idx_variate_runs_seed ON variate_runs(seed)",
		"CREATE INDEX IF NOT EXISTS idx_variate_runs_fingerprint ON variate_runs(fingerprint)",
		"CREATE INDEX IF NOT EXISTS idx_variate_runs_created_at ON variate_runs(created_at DESC)",
	}

	for _, idxSQL := range indexes {
		if _, err := db.ExecContext(ctx, idxSQL); err != nil {
			// Log but don't fail on index creation errors
			fmt.Printf("Warning: failed to create index: %v\n", err)
		}
	}

	return nil
}
