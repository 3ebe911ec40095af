// Package variate generates pseudo-random variates from a small set of
// distributions behind one polymorphic contract. Every generator draws its
// randomness through a Source, so a run is fully determined by the seed;
// generators with a nil Src share the process-wide source (see SharedSource)
// while generators bound to a NewSource stream are isolated from each other.
package variate

import (
	"errors"
	"fmt"
)

// Generator is the contract shared by all variate generators: reseed the
// underlying uniform stream, then produce one variate per Next call.
//
// Generators are single-threaded. Use one per goroutine, or wrap access in
// your own synchronization.
type Generator[T any] interface {
	// Seed reseeds the generator's source using the first value; extra
	// values are accepted and ignored. Calling Seed with no values is a
	// caller contract violation and panics.
	Seed(seeds ...int64)
	// Next returns the next variate.
	Next() T
}

var (
	_ Generator[float64] = (*Uniform)(nil)
	_ Generator[int64]   = (*UniformInt)(nil)
	_ Generator[float64] = (*Normal)(nil)
	_ Generator[string]  = (*Bootstrap[string])(nil)
)

// ErrUnimplemented is the panic value raised when an operation is invoked on
// the bare generator contract instead of a concrete generator.
var ErrUnimplemented = errors.New("generator operation not implemented")

// ErrInvalidArgument marks construction input a generator cannot accept,
// such as an empty bootstrap dataset.
var ErrInvalidArgument = errors.New("invalid construction argument")

// Unimplemented is an embeddable base for partial Generator implementations.
// Both operations panic with ErrUnimplemented, so invoking them on a value
// that has not overridden them surfaces the programming error immediately.
type Unimplemented[T any] struct{}

// Seed panics with ErrUnimplemented.
func (Unimplemented[T]) Seed(seeds ...int64) {
	panic(ErrUnimplemented)
}

// Next panics with ErrUnimplemented.
func (Unimplemented[T]) Next() (v T) {
	panic(ErrUnimplemented)
}

// firstSeed extracts the seed a generator actually uses. The contract
// accepts a sequence for compatibility, but only the first element matters.
func firstSeed(seeds []int64) int64 {
	if len(seeds) == 0 {
		panic(fmt.Errorf("%w: Seed requires at least one value", ErrInvalidArgument))
	}
	return seeds[0]
}

// sourceOf resolves the stream a generator draws from: its own Src when
// bound, the process-wide shared source otherwise.
func sourceOf(src Source) Source {
	if src != nil {
		return src
	}
	return shared
}
