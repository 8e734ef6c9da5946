package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/spaces/ndarray"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Shape returns a random shape with 1..maxDims axes of extent 1..maxExtent.
func (r *RNG) Shape(maxDims, maxExtent int) ndarray.Shape {
	r.mu.Lock()
	defer r.mu.Unlock()

	shape := make(ndarray.Shape, 1+r.rand.Intn(maxDims))
	for i := range shape {
		shape[i] = 1 + r.rand.Intn(maxExtent)
	}
	return shape
}

// Bounds returns n random bound pairs in [-scale, scale) with low[i] <= high[i].
func (r *RNG) Bounds(n int, scale float64) (low, high []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	low = make([]float64, n)
	high = make([]float64, n)
	for i := 0; i < n; i++ {
		a := (r.rand.Float64()*2 - 1) * scale
		b := (r.rand.Float64()*2 - 1) * scale
		low[i], high[i] = min(a, b), max(a, b)
	}
	return low, high
}

// FixedUniform is a uniform source that always returns
// low + Fraction*(high-low) for every coordinate.
type FixedUniform struct {
	Fraction float64
}

// Uniform implements prng.Uniform.
func (f FixedUniform) Uniform(low, high []float64, size ndarray.Shape) (ndarray.Array[float64], error) {
	out := make([]float64, len(low))
	for i := range out {
		out[i] = low[i] + f.Fraction*(high[i]-low[i])
	}
	return ndarray.FromSlice(out, size...)
}

// SequenceUniform cycles through Fractions, one per coordinate drawn, and
// counts calls. It is safe for concurrent use.
type SequenceUniform struct {
	Fractions []float64

	mu    sync.Mutex
	next  int
	calls int
}

// Uniform implements prng.Uniform.
func (s *SequenceUniform) Uniform(low, high []float64, size ndarray.Shape) (ndarray.Array[float64], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	out := make([]float64, len(low))
	for i := range out {
		f := s.Fractions[s.next%len(s.Fractions)]
		s.next++
		out[i] = low[i] + f*(high[i]-low[i])
	}
	return ndarray.FromSlice(out, size...)
}

// Calls returns the number of Uniform calls so far.
func (s *SequenceUniform) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// FailingUniform is a uniform source that always fails with Err.
type FailingUniform struct {
	Err error
}

// Uniform implements prng.Uniform.
func (f FailingUniform) Uniform([]float64, []float64, ndarray.Shape) (ndarray.Array[float64], error) {
	return ndarray.Array[float64]{}, f.Err
}
