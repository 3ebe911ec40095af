package variate

import "fmt"

// Bootstrap resamples a fixed dataset with replacement: each Next spends one
// uniform draw on an index and returns the element stored there. The dataset
// is captured at construction, so mutating the slice a generator was built
// from cannot change what it yields; the elements themselves are returned
// as stored, not deep-copied.
type Bootstrap[T any] struct {
	// Src is the uniform stream to draw from. Nil means the shared source.
	Src Source

	data []T
}

// NewBootstrap returns a generator over the given values. At least one value
// is required.
func NewBootstrap[T any](values ...T) (*Bootstrap[T], error) {
	return NewBootstrapFrom(values)
}

// NewBootstrapFrom returns a generator over a copy of data. At least one
// element is required.
func NewBootstrapFrom[T any](data []T) (*Bootstrap[T], error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: bootstrap dataset must contain at least one value", ErrInvalidArgument)
	}
	owned := make([]T, len(data))
	copy(owned, data)
	return &Bootstrap[T]{data: owned}, nil
}

// Seed reseeds the generator's source with the first value.
func (b *Bootstrap[T]) Seed(seeds ...int64) {
	sourceOf(b.Src).Reseed(firstSeed(seeds))
}

// Next returns a uniformly chosen element of the dataset. A one-element
// dataset degenerates to a constant generator.
func (b *Bootstrap[T]) Next() T {
	i := int(sourceOf(b.Src).Float64() * float64(len(b.data)))
	if i == len(b.data) {
		// A draw close enough to 1 can round the scaled index up to len.
		i = len(b.data) - 1
	}
	return b.data[i]
}

// Len returns the dataset size.
func (b *Bootstrap[T]) Len() int { return len(b.data) }

// Values returns a copy of the dataset in stored order.
func (b *Bootstrap[T]) Values() []T {
	out := make([]T, len(b.data))
	copy(out, b.data)
	return out
}
