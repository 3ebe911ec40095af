package ports

import (
	"context"

	"govariate/domain/core"
	"govariate/domain/run"
)

// RunWriterPort provides append-only write access to the run ledger.
// Manifests are immutable once stored; there is no update path.
type RunWriterPort interface {
	SaveRun(ctx context.Context, manifest *run.Manifest) error
}

// RunReaderPort provides read-only access to stored run manifests.
// Use this for queries, replay, and API access.
type RunReaderPort interface {
	GetRun(ctx context.Context, runID core.RunID) (*run.Manifest, error)
	ListRuns(ctx context.Context, filters RunFilters) ([]run.Manifest, error)
}

// RunFilters narrows run ledger queries. An empty Kind matches every
// generator kind.
type RunFilters struct {
	Kind   string
	Seed   *int64
	Limit  int
	Offset int
}

// RunLedgerPort combines read and write access for callers that own the
// full run lifecycle, such as the draw service.
type RunLedgerPort interface {
	RunWriterPort
	RunReaderPort
}
