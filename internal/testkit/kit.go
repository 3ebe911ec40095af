// Package testkit provides testing utilities and fixtures: an in-memory
// run ledger and a scripted source for driving generators through exact
// draw sequences.
package testkit

import (
	"context"
	"sync"

	"govariate/app"
	"govariate/domain/core"
	"govariate/domain/run"
	apperrors "govariate/internal/errors"
	"govariate/ports"
)

// TestKit wires the application against in-memory adapters.
type TestKit struct {
	ledger *InMemoryRunLedger // Shared ledger instance
}

// NewTestKit creates a new test kit instance.
func NewTestKit() (*TestKit, error) {
	return &TestKit{ledger: NewInMemoryRunLedger()}, nil
}

// LedgerAdapter returns the shared run ledger.
func (t *TestKit) LedgerAdapter() ports.RunLedgerPort {
	return t.ledger
}

// LedgerReaderAdapter returns read-only access to the same storage.
func (t *TestKit) LedgerReaderAdapter() ports.RunReaderPort {
	return t.ledger
}

// DrawService returns a draw service backed by the shared ledger.
func (t *TestKit) DrawService() *app.DrawService {
	return app.NewDrawService(t.ledger, app.DefaultDrawLimits())
}

// SequenceSource replays a scripted series of unit-interval values,
// cycling when exhausted. Reseed rewinds to the start of the script.
type SequenceSource struct {
	values []float64
	pos    int
}

// NewSequenceSource creates a source that yields the given values in order.
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Reseed(seed int64) {
	s.pos = 0
}

func (s *SequenceSource) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

// InMemoryRunLedger implements ports.RunLedgerPort with in-memory storage.
type InMemoryRunLedger struct {
	runs  map[core.RunID]*run.Manifest
	order []core.RunID
	mu    sync.RWMutex
}

func NewInMemoryRunLedger() *InMemoryRunLedger {
	return &InMemoryRunLedger{
		runs: make(map[core.RunID]*run.Manifest),
	}
}

func (l *InMemoryRunLedger) SaveRun(ctx context.Context, manifest *run.Manifest) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.runs[manifest.RunID]; !exists {
		l.order = append(l.order, manifest.RunID)
	}
	l.runs[manifest.RunID] = cloneManifest(manifest)

	return nil
}

func (l *InMemoryRunLedger) GetRun(ctx context.Context, runID core.RunID) (*run.Manifest, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	manifest, exists := l.runs[runID]
	if !exists {
		return nil, apperrors.NotFound("run")
	}

	return cloneManifest(manifest), nil
}

func (l *InMemoryRunLedger) ListRuns(ctx context.Context, filters ports.RunFilters) ([]run.Manifest, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	// Newest first, matching the SQL adapter's ordering.
	results := []run.Manifest{}
	skipped := 0

	for i := len(l.order) - 1; i >= 0; i-- {
		manifest := l.runs[l.order[i]]

		if filters.Kind != "" && manifest.Kind != filters.Kind {
			continue
		}
		if filters.Seed != nil && manifest.Seed != *filters.Seed {
			continue
		}
		if skipped < filters.Offset {
			skipped++
			continue
		}

		results = append(results, *cloneManifest(manifest))
		if filters.Limit > 0 && len(results) >= filters.Limit {
			break
		}
	}

	return results, nil
}

// cloneManifest copies a manifest so callers cannot mutate stored state.
func cloneManifest(m *run.Manifest) *run.Manifest {
	clone := *m
	if m.Params != nil {
		clone.Params = make(map[string]interface{}, len(m.Params))
		for k, v := range m.Params {
			clone.Params[k] = v
		}
	}
	if m.Summary != nil {
		clone.Summary = make(map[string]float64, len(m.Summary))
		for k, v := range m.Summary {
			clone.Summary[k] = v
		}
	}
	return &clone
}
