package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"govariate/domain/core"
	"govariate/domain/run"
	apperrors "govariate/internal/errors"
	"govariate/ports"
)

// runRepository implements the RunLedgerPort interface
type runRepository struct {
	db *sqlx.DB
}

// NewRunRepository creates a run ledger backed by the variate_runs table.
func NewRunRepository(db *sqlx.DB) ports.RunLedgerPort {
	return &runRepository{db: db}
}

// SaveRun inserts a run manifest. The ledger is append-only, so a duplicate
// run_id is an error rather than an upsert.
func (r *runRepository) SaveRun(ctx context.Context, manifest *run.Manifest) error {
	row := rowFromManifest(manifest)

	query := `INSERT INTO variate_runs (
		run_id, kind, params, seed, draw_count, fingerprint, summary, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		row.RunID, row.Kind, row.Params, row.Seed, row.DrawCount,
		row.Fingerprint, row.Summary, row.CreatedAt,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to insert run manifest", err)
	}

	return nil
}

// GetRun retrieves a run manifest by its ID.
func (r *runRepository) GetRun(ctx context.Context, runID core.RunID) (*run.Manifest, error) {
	query := `SELECT run_id, kind, params, seed, draw_count, fingerprint, summary, created_at
	FROM variate_runs WHERE run_id = $1`

	var row runRow
	err := r.db.QueryRowContext(ctx, query, runID.String()).Scan(
		&row.RunID, &row.Kind, &row.Params, &row.Seed, &row.DrawCount,
		&row.Fingerprint, &row.Summary, &row.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("run")
		}
		return nil, apperrors.DatabaseError("failed to get run manifest", err)
	}

	return row.toManifest(), nil
}

// ListRuns queries run manifests, newest first.
func (r *runRepository) ListRuns(ctx context.Context, filters ports.RunFilters) ([]run.Manifest, error) {
	query := `SELECT run_id, kind, params, seed, draw_count, fingerprint, summary, created_at
	FROM variate_runs`

	var conditions []string
	var args []interface{}

	if filters.Kind != "" {
		args = append(args, filters.Kind)
		conditions = append(conditions, fmt.Sprintf("kind = $%d", len(args)))
	}
	if filters.Seed != nil {
		args = append(args, *filters.Seed)
		conditions = append(conditions, fmt.Sprintf("seed = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at DESC"

	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filters.Offset > 0 {
		args = append(args, filters.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to query runs", err)
	}
	defer rows.Close()

	var manifests []run.Manifest
	for rows.Next() {
		var row runRow
		err := rows.Scan(
			&row.RunID, &row.Kind, &row.Params, &row.Seed, &row.DrawCount,
			&row.Fingerprint, &row.Summary, &row.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.DatabaseError("failed to scan run row", err)
		}
		manifests = append(manifests, *row.toManifest())
	}

	return manifests, nil
}
