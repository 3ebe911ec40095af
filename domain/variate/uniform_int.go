package variate

import "math"

// UniformInt generates integer variates uniformly distributed over the
// inclusive interval [low, high]. Real-valued bounds are accepted and
// truncated toward zero before any sorting, mirroring integer coercion in
// the environments this generator is fed from.
type UniformInt struct {
	// Src is the uniform stream to draw from. Nil means the shared source.
	Src Source

	low  int64
	high int64
}

// NewUniformInt returns a generator over [0, 1]; draws are only ever 0 or 1.
func NewUniformInt() *UniformInt {
	return &UniformInt{low: 0, high: 1}
}

// NewUniformIntHigh returns a generator with low fixed at 0 and high set to
// trunc(high). The bounds are not sorted in this mode: a negative argument
// yields a negative-oriented inclusive range anchored at 0. That orientation
// is long-standing observable behavior, kept rather than silently repaired.
func NewUniformIntHigh(high float64) *UniformInt {
	return &UniformInt{low: 0, high: int64(math.Trunc(high))}
}

// NewUniformIntRange returns a generator over the inclusive range spanned by
// trunc(a) and trunc(b), sorted so low <= high.
func NewUniformIntRange(a, b float64) *UniformInt {
	lo := int64(math.Trunc(a))
	hi := int64(math.Trunc(b))
	if hi < lo {
		lo, hi = hi, lo
	}
	return &UniformInt{low: lo, high: hi}
}

// Seed reseeds the generator's source with the first value.
func (u *UniformInt) Seed(seeds ...int64) {
	sourceOf(u.Src).Reseed(firstSeed(seeds))
}

// Next returns the next variate, floor(u*(high-low+1)) + low for a uniform
// u in [0,1). Both endpoints are reachable.
func (u *UniformInt) Next() int64 {
	span := float64(u.high - u.low + 1)
	return int64(math.Floor(sourceOf(u.Src).Float64()*span)) + u.low
}

// Low returns the inclusive lower bound.
func (u *UniformInt) Low() int64 { return u.low }

// High returns the inclusive upper bound.
func (u *UniformInt) High() int64 { return u.high }
