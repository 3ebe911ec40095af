package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"govariate/domain/core"
	"govariate/domain/run"
	"govariate/domain/variate"
	"govariate/internal"
	"govariate/internal/diagnostics"
	apperrors "govariate/internal/errors"
	"govariate/ports"
)

// DrawService executes generator runs: it builds the requested generator,
// draws the sample, profiles it, and records the manifest in the run ledger.
type DrawService struct {
	ledger ports.RunLedgerPort
	limits DrawLimits
	logger *internal.Logger
}

// DrawLimits bounds what a single request may ask for.
type DrawLimits struct {
	MaxCount     int
	DefaultCount int
	BatchWorkers int
}

// DefaultDrawLimits returns the limits used when none are configured.
func DefaultDrawLimits() DrawLimits {
	return DrawLimits{
		MaxCount:     1_000_000,
		DefaultCount: 1000,
		BatchWorkers: 4,
	}
}

// DrawRequest specifies one generator run. Pointer fields distinguish
// "not provided" from an explicit zero, which selects the generator's
// construction mode.
type DrawRequest struct {
	Kind  string    `json:"kind"`
	Low   *float64  `json:"low,omitempty"`
	High  *float64  `json:"high,omitempty"`
	Mean  *float64  `json:"mean,omitempty"`
	Stdev *float64  `json:"stdev,omitempty"`
	Data  []float64 `json:"data,omitempty"`
	Seed  *int64    `json:"seed,omitempty"`
	Count int       `json:"count"`
}

// DrawResult contains the drawn sample and its recorded manifest.
type DrawResult struct {
	Manifest  *run.Manifest `json:"manifest"`
	Values    []float64     `json:"values"`
	RuntimeMs int64         `json:"runtime_ms"`
}

// BatchItem is the outcome of one request inside a batch. Exactly one of
// Result and Error is set.
type BatchItem struct {
	Index  int         `json:"index"`
	Result *DrawResult `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// NewDrawService creates a draw service. Zero-valued limits fall back to
// DefaultDrawLimits.
func NewDrawService(ledger ports.RunLedgerPort, limits DrawLimits) *DrawService {
	defaults := DefaultDrawLimits()
	if limits.MaxCount <= 0 {
		limits.MaxCount = defaults.MaxCount
	}
	if limits.DefaultCount <= 0 {
		limits.DefaultCount = defaults.DefaultCount
	}
	if limits.BatchWorkers <= 0 {
		limits.BatchWorkers = defaults.BatchWorkers
	}
	return &DrawService{
		ledger: ledger,
		limits: limits,
		logger: internal.NewDefaultLogger(),
	}
}

// RunDraw executes a single generator run. Each run draws from its own
// source seeded with the requested seed, so identical requests reproduce
// identical values regardless of what other runs are in flight.
func (s *DrawService) RunDraw(ctx context.Context, req DrawRequest) (*DrawResult, error) {
	startTime := time.Now()

	count := req.Count
	if count == 0 {
		count = s.limits.DefaultCount
	}
	if count < 0 {
		return nil, apperrors.InvalidInput("count must be positive")
	}
	if count > s.limits.MaxCount {
		return nil, apperrors.InvalidInput(fmt.Sprintf("count %d exceeds the limit of %d", count, s.limits.MaxCount))
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	next, params, err := buildDraw(req, variate.NewSource(seed))
	if err != nil {
		return nil, err
	}

	values := make([]float64, count)
	for i := range values {
		values[i] = next()
	}

	summary, err := diagnostics.Summarize(values)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize draw sample: %w", err)
	}

	manifest := run.NewManifest(core.NewRunID(), req.Kind, params, seed, count)
	manifest.Summary = summary.Map()
	if err := manifest.Validate(); err != nil {
		return nil, err
	}

	if err := s.ledger.SaveRun(ctx, manifest); err != nil {
		return nil, apperrors.Wrap(err, "failed to store run manifest")
	}

	runtimeMs := time.Since(startTime).Milliseconds()
	s.logger.Info("Recorded %s run %s (%d values, seed %d) in %dms",
		manifest.Kind, manifest.RunID, count, seed, runtimeMs)

	return &DrawResult{
		Manifest:  manifest,
		Values:    values,
		RuntimeMs: runtimeMs,
	}, nil
}

// RunBatch executes requests concurrently, bounded by the configured worker
// limit. Items come back in request order; a failed request reports its
// error without aborting the rest.
func (s *DrawService) RunBatch(ctx context.Context, reqs []DrawRequest) ([]BatchItem, error) {
	if len(reqs) == 0 {
		return nil, apperrors.InvalidInput("batch must contain at least one request")
	}

	sem := semaphore.NewWeighted(int64(s.limits.BatchWorkers))
	var wg sync.WaitGroup
	items := make([]BatchItem, len(reqs))

	for i, req := range reqs {
		wg.Add(1)
		go func(i int, req DrawRequest) {
			defer wg.Done()

			if err := sem.Acquire(ctx, 1); err != nil {
				items[i] = BatchItem{Index: i, Error: err.Error()}
				return
			}
			defer sem.Release(1)

			result, err := s.RunDraw(ctx, req)
			if err != nil {
				items[i] = BatchItem{Index: i, Error: err.Error()}
				return
			}
			items[i] = BatchItem{Index: i, Result: result}
		}(i, req)
	}

	wg.Wait()
	return items, nil
}

// GetRun retrieves a stored run manifest.
func (s *DrawService) GetRun(ctx context.Context, runID core.RunID) (*run.Manifest, error) {
	return s.ledger.GetRun(ctx, runID)
}

// ListRuns queries the run ledger.
func (s *DrawService) ListRuns(ctx context.Context, filters ports.RunFilters) ([]run.Manifest, error) {
	return s.ledger.ListRuns(ctx, filters)
}

// buildDraw constructs the generator a request describes, wires it to src,
// and returns a float64 draw function plus the resolved construction params
// recorded in the manifest.
func buildDraw(req DrawRequest, src variate.Source) (func() float64, map[string]interface{}, error) {
	switch req.Kind {
	case run.KindUniform:
		g, err := uniformFor(req)
		if err != nil {
			return nil, nil, err
		}
		g.Src = src
		params := map[string]interface{}{"low": g.Low(), "high": g.High()}
		return g.Next, params, nil

	case run.KindUniformInt:
		g, err := uniformIntFor(req)
		if err != nil {
			return nil, nil, err
		}
		g.Src = src
		params := map[string]interface{}{"low": g.Low(), "high": g.High()}
		return func() float64 { return float64(g.Next()) }, params, nil

	case run.KindNormal:
		g, err := normalFor(req)
		if err != nil {
			return nil, nil, err
		}
		g.Src = src
		params := map[string]interface{}{"mean": g.Mean(), "stdev": g.Stdev()}
		return g.Next, params, nil

	case run.KindBootstrap:
		g, err := variate.NewBootstrapFrom(req.Data)
		if err != nil {
			return nil, nil, apperrors.InvalidInput(err.Error())
		}
		g.Src = src
		params := map[string]interface{}{"size": g.Len(), "data": g.Values()}
		return g.Next, params, nil
	}

	return nil, nil, apperrors.InvalidInput(fmt.Sprintf("unknown generator kind %q", req.Kind))
}

func uniformFor(req DrawRequest) (*variate.Uniform, error) {
	switch {
	case req.Low == nil && req.High == nil:
		return variate.NewUniform(), nil
	case req.Low == nil:
		return variate.NewUniformHigh(*req.High), nil
	case req.High == nil:
		return nil, apperrors.InvalidInput("low requires high")
	default:
		return variate.NewUniformRange(*req.Low, *req.High), nil
	}
}

func uniformIntFor(req DrawRequest) (*variate.UniformInt, error) {
	switch {
	case req.Low == nil && req.High == nil:
		return variate.NewUniformInt(), nil
	case req.Low == nil:
		return variate.NewUniformIntHigh(*req.High), nil
	case req.High == nil:
		return nil, apperrors.InvalidInput("low requires high")
	default:
		return variate.NewUniformIntRange(*req.Low, *req.High), nil
	}
}

func normalFor(req DrawRequest) (*variate.Normal, error) {
	switch {
	case req.Mean == nil && req.Stdev == nil:
		return variate.NewNormal(), nil
	case req.Stdev == nil:
		return variate.NewNormalMean(*req.Mean), nil
	case req.Mean == nil:
		return nil, apperrors.InvalidInput("stdev requires mean")
	default:
		return variate.NewNormalMeanStdev(*req.Mean, *req.Stdev), nil
	}
}
