package prng

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/spaces/ndarray"
)

// ErrUninitialized is returned when drawing from a Source that was never seeded.
var ErrUninitialized = errors.New("random source is not initialized; seed it before sampling")

// ErrRangeOverflow is matched (errors.Is) by a RangeError.
var ErrRangeOverflow = errors.New("range exceeds valid bounds")

// RangeError reports a coordinate whose width high-low is not a finite
// float64, e.g. an infinite bound or [-MaxFloat64, MaxFloat64].
type RangeError struct {
	Index int
	Low   float64
	High  float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("uniform: coordinate %d: [%g, %g]: %v", e.Index, e.Low, e.High, ErrRangeOverflow)
}

func (e *RangeError) Is(target error) bool { return target == ErrRangeOverflow }

// Uniform draws independent per-coordinate uniform values.
//
// low and high hold one bound per coordinate in row-major order and must both
// have size.Size() elements. The i-th output lies in [low[i], high[i]).
type Uniform interface {
	Uniform(low, high []float64, size ndarray.Shape) (ndarray.Array[float64], error)
}

// Source is a seeded uniform random source. It is safe for concurrent use.
// The zero value is valid but unseeded.
type Source struct {
	mu     sync.Mutex
	rand   *rand.Rand
	seed   int64
	seeded bool
}

// NewSource creates a Source seeded with seed.
func NewSource(seed int64) *Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// Seed (re)initializes the stream from seed.
func (s *Source) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rand = rand.New(rand.NewSource(seed)) // nolint gosec
	s.seed = seed
	s.seeded = true
}

// Seeded reports whether Seed has been called.
func (s *Source) Seeded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seeded
}

// InitialSeed returns the last seed passed to Seed.
func (s *Source) InitialSeed() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.seeded {
		return 0, ErrUninitialized
	}
	return s.seed, nil
}

// Reset rewinds the stream to its last seed.
func (s *Source) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.seeded {
		return ErrUninitialized
	}
	s.rand.Seed(s.seed)
	return nil
}

// Float64 returns a value in [0.0, 1.0).
func (s *Source) Float64() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.seeded {
		return 0, ErrUninitialized
	}
	return s.rand.Float64(), nil
}

// Uniform implements Uniform. Locks only once per call.
func (s *Source) Uniform(low, high []float64, size ndarray.Shape) (ndarray.Array[float64], error) {
	if err := size.Validate(); err != nil {
		return ndarray.Array[float64]{}, err
	}
	n := size.Size()
	if len(low) != n || len(high) != n {
		return ndarray.Array[float64]{}, fmt.Errorf("uniform: bounds have %d/%d elements, size %s needs %d", len(low), len(high), size, n)
	}

	// Checked before drawing so a rejected call leaves the stream untouched.
	for i := range low {
		if w := high[i] - low[i]; math.IsInf(w, 0) || math.IsNaN(w) {
			return ndarray.Array[float64]{}, &RangeError{Index: i, Low: low[i], High: high[i]}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.seeded {
		return ndarray.Array[float64]{}, ErrUninitialized
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = low[i] + (high[i]-low[i])*s.rand.Float64()
	}
	return ndarray.FromSlice(out, size...)
}
