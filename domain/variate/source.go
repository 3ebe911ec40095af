package variate

import (
	"math/rand"
	"sync"
)

// Source supplies the uniform randomness every generator consumes. Draws are
// in the half-open interval [0,1) and Reseed deterministically resets the
// stream, so two sources reseeded with the same value replay the same draws.
type Source interface {
	// Reseed resets the source to the deterministic state for seed.
	Reseed(seed int64)
	// Float64 returns the next uniform draw in [0,1).
	Float64() float64
}

// ownedSource is a per-instance source. It is not safe for concurrent use;
// callers that draw from multiple goroutines take one source per goroutine.
type ownedSource struct {
	rng *rand.Rand
}

// NewSource returns an independent source seeded with seed. Generators bound
// to it are isolated: reseeding one never disturbs another generator's
// stream.
func NewSource(seed int64) Source {
	return &ownedSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *ownedSource) Reseed(seed int64) {
	s.rng.Seed(seed)
}

func (s *ownedSource) Float64() float64 {
	return s.rng.Float64()
}

// lockedSource guards the process-wide stream. Generators constructed
// without an explicit Src all draw from the one instance below, so it takes
// a mutex even though individual generators are single-threaded.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) Reseed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Seed(seed)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// shared is the process-wide source. Seeded 1 at startup, matching the
// historical default of the stdlib global stream, so an unseeded program is
// reproducible run to run.
var shared = &lockedSource{rng: rand.New(rand.NewSource(1))}

// SharedSource returns the process-wide source used by every generator whose
// Src field is nil. The coupling is deliberate: calling Seed on any such
// generator redirects the draws of all of them. Programs that want isolated
// streams bind NewSource results to their generators instead.
func SharedSource() Source {
	return shared
}
