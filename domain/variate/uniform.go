package variate

// Uniform generates real variates uniformly distributed over the half-open
// interval [low, high). Bounds are fixed at construction; Src may be bound
// to an owned source before first use, otherwise draws come from the shared
// process-wide source.
type Uniform struct {
	// Src is the uniform stream to draw from. Nil means the shared source.
	// Set it before the first Seed or Next call and leave it alone after.
	Src Source

	low  float64
	high float64
}

// NewUniform returns a generator over the unit interval [0, 1).
func NewUniform() *Uniform {
	return &Uniform{low: 0, high: 1}
}

// NewUniformHigh returns a generator over [0, high). The bound is taken as
// given, without sorting against the implicit 0.
func NewUniformHigh(high float64) *Uniform {
	return &Uniform{low: 0, high: high}
}

// NewUniformRange returns a generator over [min(a,b), max(a,b)). The bounds
// may arrive in either order.
func NewUniformRange(a, b float64) *Uniform {
	if b < a {
		a, b = b, a
	}
	return &Uniform{low: a, high: b}
}

// Seed reseeds the generator's source with the first value.
func (u *Uniform) Seed(seeds ...int64) {
	sourceOf(u.Src).Reseed(firstSeed(seeds))
}

// Next returns the next variate, low + u*(high-low) for a uniform u in
// [0,1). When low equals high every draw returns low.
func (u *Uniform) Next() float64 {
	return u.low + sourceOf(u.Src).Float64()*(u.high-u.low)
}

// Low returns the inclusive lower bound.
func (u *Uniform) Low() float64 { return u.low }

// High returns the exclusive upper bound.
func (u *Uniform) High() float64 { return u.high }
