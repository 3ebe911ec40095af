package diagnostics

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// rejectionLevel is the p-value below which a goodness-of-fit check fails.
const rejectionLevel = 0.01

// minPerBin keeps expected bin counts large enough for the chi-squared
// approximation to hold.
const minPerBin = 5

// FitResult is the outcome of a chi-squared goodness-of-fit check.
type FitResult struct {
	Statistic float64 `json:"statistic"`
	DF        int     `json:"df"`
	PValue    float64 `json:"p_value"`
	Fits      bool    `json:"fits"`
}

// UniformFit checks a sample against the flat density on [low, high) by
// binning into equal-width cells and comparing to the uniform expectation.
func UniformFit(sample []float64, low, high float64, bins int) (FitResult, error) {
	if err := checkFitArgs(len(sample), bins); err != nil {
		return FitResult{}, err
	}
	if high <= low {
		return FitResult{}, fmt.Errorf("uniform fit requires high > low, got [%v, %v)", low, high)
	}

	observed := make([]float64, bins)
	width := (high - low) / float64(bins)
	for _, v := range sample {
		idx := int((v - low) / width)
		if idx < 0 {
			idx = 0
		}
		if idx >= bins {
			idx = bins - 1
		}
		observed[idx]++
	}

	expected := float64(len(sample)) / float64(bins)
	return chiSquare(observed, expected), nil
}

// NormalFit checks a sample against the normal distribution with the given
// parameters. Bin edges are the reference distribution's equal-probability
// quantiles, so every bin has the same expected count.
func NormalFit(sample []float64, mean, stdev float64, bins int) (FitResult, error) {
	if err := checkFitArgs(len(sample), bins); err != nil {
		return FitResult{}, err
	}
	if stdev <= 0 {
		return FitResult{}, fmt.Errorf("normal fit requires a positive stdev, got %v", stdev)
	}

	ref := distuv.Normal{Mu: mean, Sigma: stdev}
	edges := make([]float64, bins-1)
	for i := 1; i < bins; i++ {
		edges[i-1] = ref.Quantile(float64(i) / float64(bins))
	}

	observed := make([]float64, bins)
	for _, v := range sample {
		observed[sort.SearchFloat64s(edges, v)]++
	}

	expected := float64(len(sample)) / float64(bins)
	return chiSquare(observed, expected), nil
}

func checkFitArgs(sampleLen, bins int) error {
	if bins < 2 {
		return fmt.Errorf("goodness-of-fit requires at least 2 bins, got %d", bins)
	}
	if sampleLen < bins*minPerBin {
		return fmt.Errorf("sample of %d too small for %d bins", sampleLen, bins)
	}
	return nil
}

// chiSquare computes the test statistic against a flat expectation and its
// p-value from the chi-squared distribution with bins-1 degrees of freedom.
func chiSquare(observed []float64, expected float64) FitResult {
	statistic := 0.0
	for _, obs := range observed {
		d := obs - expected
		statistic += d * d / expected
	}

	df := len(observed) - 1
	dist := distuv.ChiSquared{K: float64(df)}
	pValue := 1 - dist.CDF(statistic)

	return FitResult{
		Statistic: statistic,
		DF:        df,
		PValue:    pValue,
		Fits:      pValue > rejectionLevel,
	}
}
