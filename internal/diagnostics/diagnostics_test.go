package diagnostics

import (
	"testing"

	"govariate/domain/variate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeKnownSample(t *testing.T) {
	// Mean 5, population stddev 2, median 4.5.
	sample := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	s, err := Summarize(sample)
	require.NoError(t, err)

	assert.Equal(t, 8, s.Count)
	assert.InDelta(t, 5.0, s.Mean, 1e-12)
	assert.InDelta(t, 2.0, s.StdDev, 1e-12)
	assert.InDelta(t, 2.0, s.Min, 1e-12)
	assert.InDelta(t, 9.0, s.Max, 1e-12)
	assert.InDelta(t, 4.5, s.Median, 1e-12)
	assert.InDelta(t, 4.0, s.Q25, 1e-12)
	assert.InDelta(t, 5.0, s.Q75, 1e-12)

	// Adjusted Fisher-Pearson skewness: (5.25/8) * sqrt(8*7)/6.
	assert.InDelta(t, 0.8184875533568, s.Skewness, 1e-9)
	// Bias-corrected total kurtosis: (-0.21875)*(7/30) + 6/9 + 3.
	assert.InDelta(t, 3.615625, s.Kurtosis, 1e-9)
}

func TestSummarizeEmptySample(t *testing.T) {
	_, err := Summarize(nil)
	assert.Error(t, err)
}

func TestSummarizeConstantSample(t *testing.T) {
	s, err := Summarize([]float64{3, 3, 3, 3, 3})
	require.NoError(t, err)

	assert.InDelta(t, 3.0, s.Mean, 1e-12)
	assert.Equal(t, 0.0, s.StdDev)
	assert.Equal(t, 0.0, s.Skewness)
	assert.Equal(t, 0.0, s.Kurtosis)
}

func TestSummaryMapRoundTrip(t *testing.T) {
	s, err := Summarize([]float64{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)

	m := s.Map()
	assert.Len(t, m, 10)
	assert.Equal(t, float64(s.Count), m["count"])
	assert.Equal(t, s.Mean, m["mean"])
	assert.Equal(t, s.StdDev, m["std_dev"])
	assert.Equal(t, s.Skewness, m["skewness"])
	assert.Equal(t, s.Kurtosis, m["kurtosis"])
}

func TestUniformFitAcceptsUniformSample(t *testing.T) {
	sample := uniformSample(t, 42, 6000)

	res, err := UniformFit(sample, 0, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 9, res.DF)
	// A correctly specified model should not come anywhere near rejection.
	assert.Greater(t, res.PValue, 1e-4)
}

func TestUniformFitRejectsNormalSample(t *testing.T) {
	sample := normalSample(t, 42, 6000)

	// Normal draws clustered around 0.5 are nothing like flat on [-4, 5).
	res, err := UniformFit(sample, -4, 5, 10)
	require.NoError(t, err)

	assert.False(t, res.Fits)
	assert.Less(t, res.PValue, rejectionLevel)
}

func TestNormalFitAcceptsNormalSample(t *testing.T) {
	sample := normalSample(t, 42, 6000)

	res, err := NormalFit(sample, 0.5, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 9, res.DF)
	assert.Greater(t, res.PValue, 1e-4)
}

func TestNormalFitRejectsUniformSample(t *testing.T) {
	sample := uniformSample(t, 42, 6000)

	// The flat [0,1) sample has no tails at all.
	res, err := NormalFit(sample, 0.5, 0.2887, 10)
	require.NoError(t, err)

	assert.False(t, res.Fits)
	assert.Less(t, res.PValue, rejectionLevel)
}

func TestFitArgumentValidation(t *testing.T) {
	sample := uniformSample(t, 7, 100)

	_, err := UniformFit(sample, 0, 1, 1)
	assert.Error(t, err, "single bin has no degrees of freedom")

	_, err = UniformFit(sample, 0, 1, 50)
	assert.Error(t, err, "expected counts below the chi-squared floor")

	_, err = UniformFit(sample, 1, 1, 10)
	assert.Error(t, err, "empty support")

	_, err = NormalFit(sample, 0, -1, 10)
	assert.Error(t, err, "negative stdev")

	_, err = NormalFit(sample, 0, 0, 10)
	assert.Error(t, err, "zero stdev")
}

func TestUniformFitCountsOutliersInEdgeBins(t *testing.T) {
	sample := uniformSample(t, 11, 200)
	sample = append(sample, -0.5, 1.5) // outside the declared support

	res, err := UniformFit(sample, 0, 1, 4)
	require.NoError(t, err)

	// Out-of-range values land in the outermost bins rather than panicking.
	assert.Equal(t, 3, res.DF)
	assert.Greater(t, res.Statistic, 0.0)
}

func uniformSample(t *testing.T, seed int64, n int) []float64 {
	t.Helper()
	g := variate.NewUniform()
	g.Src = variate.NewSource(seed)
	out := make([]float64, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}

func normalSample(t *testing.T, seed int64, n int) []float64 {
	t.Helper()
	g := variate.NewNormalMeanStdev(0.5, 1)
	g.Src = variate.NewSource(seed)
	out := make([]float64, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}
