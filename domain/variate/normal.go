package variate

import "math"

// tailEpsilon stands in for a raw draw of exactly 0 before the quantile
// transform, since the quantile diverges there. The value is deep in the
// representable range, far below any draw a [0,1) source can produce.
const tailEpsilon = 1e-254

// Normal generates variates from the normal distribution with the given
// mean and standard deviation, by inverse-CDF transform of a single uniform
// draw per variate.
type Normal struct {
	// Src is the uniform stream to draw from. Nil means the shared source.
	Src Source

	mean  float64
	stdev float64
}

// NewNormal returns a standard normal generator (mean 0, stdev 1).
func NewNormal() *Normal {
	return &Normal{mean: 0, stdev: 1}
}

// NewNormalMean returns a generator with the given mean and stdev 1.
func NewNormalMean(mean float64) *Normal {
	return &Normal{mean: mean, stdev: 1}
}

// NewNormalMeanStdev returns a generator with the given mean and standard
// deviation. The sign of stdev carries no information; its absolute value is
// stored.
func NewNormalMeanStdev(mean, stdev float64) *Normal {
	return &Normal{mean: mean, stdev: math.Abs(stdev)}
}

// Seed reseeds the generator's source with the first value.
func (n *Normal) Seed(seeds ...int64) {
	sourceOf(n.Src).Reseed(firstSeed(seeds))
}

// Next returns the next variate. One uniform draw p becomes the standard
// normal quantile at p, then is shifted and scaled; a draw of exactly 0 is
// replaced by tailEpsilon so the transform stays finite.
func (n *Normal) Next() float64 {
	p := sourceOf(n.Src).Float64()
	if p == 0 {
		p = tailEpsilon
	}
	return n.mean + n.stdev*stdNormalQuantile(p)
}

// Quantile returns the inverse CDF of this distribution at p, following the
// stdNormalQuantile endpoint conventions (-Inf at 0, +Inf at 1, NaN outside
// [0,1]).
func (n *Normal) Quantile(p float64) float64 {
	return n.mean + n.stdev*stdNormalQuantile(p)
}

// Mean returns the distribution mean.
func (n *Normal) Mean() float64 { return n.mean }

// Stdev returns the distribution standard deviation, always non-negative.
func (n *Normal) Stdev() float64 { return n.stdev }
