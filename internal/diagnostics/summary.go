// Package diagnostics profiles draw samples: descriptive summaries and
// chi-squared goodness-of-fit checks against the generating distribution.
package diagnostics

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Summary holds the descriptive statistics recorded with every run.
type Summary struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Q25      float64 `json:"q25"`
	Q75      float64 `json:"q75"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
}

// Summarize computes the descriptive profile of a sample.
func Summarize(sample []float64) (Summary, error) {
	data := stats.Float64Data(sample)

	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, err
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return Summary{}, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return Summary{}, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return Summary{}, err
	}
	q25, err := stats.Percentile(data, 25)
	if err != nil {
		return Summary{}, err
	}
	q75, err := stats.Percentile(data, 75)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Count:    len(sample),
		Mean:     mean,
		StdDev:   stdDev,
		Min:      min,
		Max:      max,
		Median:   median,
		Q25:      q25,
		Q75:      q75,
		Skewness: sampleSkewness(sample, mean, stdDev),
		Kurtosis: sampleKurtosis(sample, mean, stdDev),
	}, nil
}

// Map flattens the summary for storage in a run manifest.
func (s Summary) Map() map[string]float64 {
	return map[string]float64{
		"count":    float64(s.Count),
		"mean":     s.Mean,
		"std_dev":  s.StdDev,
		"min":      s.Min,
		"max":      s.Max,
		"median":   s.Median,
		"q25":      s.Q25,
		"q75":      s.Q75,
		"skewness": s.Skewness,
		"kurtosis": s.Kurtosis,
	}
}

// sampleSkewness computes the adjusted Fisher-Pearson coefficient of skewness.
func sampleSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumCubed := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumCubed += d * d * d
	}

	skewness := sumCubed / n
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	return skewness * correction
}

// sampleKurtosis computes bias-corrected total kurtosis. 3 is the normal
// baseline.
func sampleKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumFourth := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumFourth += d * d * d * d
	}

	kurtosis := sumFourth / n
	excess := kurtosis - 3

	correction := (n - 1) / ((n - 2) * (n - 3))
	excess = excess*correction + 6/(n+1)

	return excess + 3
}
