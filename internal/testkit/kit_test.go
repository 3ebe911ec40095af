package testkit

import (
	"context"
	"testing"

	"govariate/app"
	"govariate/domain/core"
	"govariate/domain/run"
	"govariate/domain/variate"
	apperrors "govariate/internal/errors"
	"govariate/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryLedgerRoundTrip(t *testing.T) {
	ledger := NewInMemoryRunLedger()
	ctx := context.Background()

	manifest := run.NewManifest(core.NewRunID(), run.KindUniform,
		map[string]interface{}{"low": 0.0, "high": 1.0}, 42, 100)

	require.NoError(t, ledger.SaveRun(ctx, manifest))

	got, err := ledger.GetRun(ctx, manifest.RunID)
	require.NoError(t, err)
	assert.Equal(t, manifest.RunID, got.RunID)
	assert.Equal(t, manifest.Kind, got.Kind)
	assert.True(t, manifest.Fingerprint.Equals(got.Fingerprint))
}

func TestInMemoryLedgerIsolatesStoredState(t *testing.T) {
	ledger := NewInMemoryRunLedger()
	ctx := context.Background()

	manifest := run.NewManifest(core.NewRunID(), run.KindUniform,
		map[string]interface{}{"low": 0.0, "high": 1.0}, 42, 100)
	require.NoError(t, ledger.SaveRun(ctx, manifest))

	// Mutating what we saved or what we read back must not leak into storage.
	manifest.Params["low"] = 99.0
	first, err := ledger.GetRun(ctx, manifest.RunID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, first.Params["low"])

	first.Params["high"] = -1.0
	second, err := ledger.GetRun(ctx, manifest.RunID)
	require.NoError(t, err)
	assert.Equal(t, 1.0, second.Params["high"])
}

func TestInMemoryLedgerNotFound(t *testing.T) {
	ledger := NewInMemoryRunLedger()

	_, err := ledger.GetRun(context.Background(), core.NewRunID())
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.GetCode(err))
}

func TestInMemoryLedgerListFilters(t *testing.T) {
	ledger := NewInMemoryRunLedger()
	ctx := context.Background()

	uniformA := run.NewManifest(core.NewRunID(), run.KindUniform, nil, 1, 10)
	normal := run.NewManifest(core.NewRunID(), run.KindNormal, nil, 2, 10)
	uniformB := run.NewManifest(core.NewRunID(), run.KindUniform, nil, 3, 10)

	for _, m := range []*run.Manifest{uniformA, normal, uniformB} {
		require.NoError(t, ledger.SaveRun(ctx, m))
	}

	all, err := ledger.ListRuns(ctx, ports.RunFilters{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, uniformB.RunID, all[0].RunID, "newest run lists first")
	assert.Equal(t, uniformA.RunID, all[2].RunID)

	uniforms, err := ledger.ListRuns(ctx, ports.RunFilters{Kind: run.KindUniform})
	require.NoError(t, err)
	require.Len(t, uniforms, 2)
	assert.Equal(t, uniformB.RunID, uniforms[0].RunID)

	limited, err := ledger.ListRuns(ctx, ports.RunFilters{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, uniformB.RunID, limited[0].RunID)

	offset, err := ledger.ListRuns(ctx, ports.RunFilters{Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, offset, 1)
	assert.Equal(t, normal.RunID, offset[0].RunID)

	seed := int64(2)
	bySeed, err := ledger.ListRuns(ctx, ports.RunFilters{Seed: &seed})
	require.NoError(t, err)
	require.Len(t, bySeed, 1)
	assert.Equal(t, normal.RunID, bySeed[0].RunID)
}

func TestSequenceSourceScriptsDraws(t *testing.T) {
	src := NewSequenceSource(0.0, 0.5, 0.999)

	g := variate.NewUniformRange(10, 20)
	g.Src = src

	assert.Equal(t, 10.0, g.Next())
	assert.Equal(t, 15.0, g.Next())
	assert.InDelta(t, 19.99, g.Next(), 1e-9)

	// Exhausting the script cycles back to the beginning.
	assert.Equal(t, 10.0, g.Next())

	src.Reseed(0)
	assert.Equal(t, 10.0, g.Next())
}

func TestKitSharesLedgerAcrossAdapters(t *testing.T) {
	kit, err := NewTestKit()
	require.NoError(t, err)

	svc := kit.DrawService()
	seed := int64(5)

	result, err := svc.RunDraw(context.Background(), app.DrawRequest{
		Kind:  run.KindUniform,
		Seed:  &seed,
		Count: 10,
	})
	require.NoError(t, err)

	got, err := kit.LedgerReaderAdapter().GetRun(context.Background(), result.Manifest.RunID)
	require.NoError(t, err)
	assert.Equal(t, result.Manifest.RunID, got.RunID)
}
