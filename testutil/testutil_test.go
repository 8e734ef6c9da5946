package testutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/spaces/ndarray"
	"github.com/hupe1980/spaces/prng"
)

var (
	_ prng.Uniform = FixedUniform{}
	_ prng.Uniform = (*SequenceUniform)(nil)
	_ prng.Uniform = FailingUniform{}
)

func TestBounds(t *testing.T) {
	rng := NewRNG(4711)

	low, high := rng.Bounds(64, 10)

	assert.Len(t, low, 64)
	assert.Len(t, high, 64)
	for i := range low {
		assert.LessOrEqual(t, low[i], high[i])
		assert.GreaterOrEqual(t, low[i], -10.0)
		assert.Less(t, high[i], 10.0)
	}
}

func TestShape(t *testing.T) {
	rng := NewRNG(4711)

	for i := 0; i < 100; i++ {
		s := rng.Shape(3, 4)
		require.NotEmpty(t, s)
		assert.LessOrEqual(t, len(s), 3)
		for _, d := range s {
			assert.GreaterOrEqual(t, d, 1)
			assert.LessOrEqual(t, d, 4)
		}
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(1)
	a := rng.Float64()
	rng.Reset()
	assert.Equal(t, a, rng.Float64())
	assert.Equal(t, int64(1), rng.Seed())
}

func TestFixedUniform(t *testing.T) {
	a, err := FixedUniform{Fraction: 0.5}.Uniform([]float64{-10, 0}, []float64{10, 4}, ndarray.Shape{2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2}, a.Data())
}

func TestSequenceUniform(t *testing.T) {
	s := &SequenceUniform{Fractions: []float64{0, 1}}
	a, err := s.Uniform([]float64{0, 0, 0}, []float64{1, 1, 1}, ndarray.Shape{3})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, a.Data())

	b, err := s.Uniform([]float64{0}, []float64{1}, ndarray.Shape{1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, b.Data())
	assert.Equal(t, 2, s.Calls())
}

func TestFailingUniform(t *testing.T) {
	boom := errors.New("boom")
	_, err := FailingUniform{Err: boom}.Uniform(nil, nil, nil)
	assert.ErrorIs(t, err, boom)
}
