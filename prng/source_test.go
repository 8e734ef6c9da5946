package prng

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/spaces/ndarray"
)

func TestUnseededSource(t *testing.T) {
	var s Source
	assert.False(t, s.Seeded())

	_, err := s.Uniform([]float64{0}, []float64{1}, ndarray.Shape{1})
	assert.ErrorIs(t, err, ErrUninitialized)

	_, err = s.Float64()
	assert.ErrorIs(t, err, ErrUninitialized)

	assert.ErrorIs(t, s.Reset(), ErrUninitialized)

	_, err = s.InitialSeed()
	assert.ErrorIs(t, err, ErrUninitialized)
}

func TestUniformWithinBounds(t *testing.T) {
	s := NewSource(7)
	low := []float64{-10, 0, 5, -1}
	high := []float64{10, 1e-3, 6, -1}

	for i := 0; i < 1000; i++ {
		a, err := s.Uniform(low, high, ndarray.Shape{2, 2})
		require.NoError(t, err)
		require.Equal(t, ndarray.Shape{2, 2}, a.Shape())
		for i, v := range a.Data() {
			assert.GreaterOrEqual(t, v, low[i])
			assert.LessOrEqual(t, v, high[i])
		}
	}
}

func TestUniformBoundsMismatch(t *testing.T) {
	s := NewSource(1)
	_, err := s.Uniform([]float64{0}, []float64{1, 2}, ndarray.Shape{2})
	assert.Error(t, err)

	_, err = s.Uniform(nil, nil, ndarray.Shape{-1})
	assert.Error(t, err)
}

func TestUniformRangeOverflow(t *testing.T) {
	tests := []struct {
		name      string
		low, high []float64
		index     int
	}{
		{"Unbounded", []float64{math.Inf(-1), 0}, []float64{math.Inf(1), 1}, 0},
		{"Half-open", []float64{0, 0}, []float64{1, math.Inf(1)}, 1},
		{"Width overflows", []float64{-math.MaxFloat64}, []float64{math.MaxFloat64}, 0},
		{"NaN bound", []float64{0, math.NaN()}, []float64{1, 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSource(3)
			_, err := s.Uniform(tt.low, tt.high, ndarray.Shape{len(tt.low)})
			require.ErrorIs(t, err, ErrRangeOverflow)

			var re *RangeError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, tt.index, re.Index)

			got, err := s.Float64()
			require.NoError(t, err)
			want, err := NewSource(3).Float64()
			require.NoError(t, err)
			assert.Equal(t, want, got, "rejected call must not advance the stream")
		})
	}
}

func TestSeedReproducible(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)
	low, high := []float64{0, 0, 0}, []float64{1, 1, 1}

	for i := 0; i < 10; i++ {
		x, err := a.Uniform(low, high, ndarray.Shape{3})
		require.NoError(t, err)
		y, err := b.Uniform(low, high, ndarray.Shape{3})
		require.NoError(t, err)
		assert.True(t, x.Equal(y))
	}
}

func TestReset(t *testing.T) {
	s := NewSource(3)
	first, err := s.Float64()
	require.NoError(t, err)
	_, err = s.Float64()
	require.NoError(t, err)

	require.NoError(t, s.Reset())
	again, err := s.Float64()
	require.NoError(t, err)
	assert.Equal(t, first, again)

	seed, err := s.InitialSeed()
	require.NoError(t, err)
	assert.Equal(t, int64(3), seed)
}

func TestReseedChangesStream(t *testing.T) {
	s := NewSource(1)
	a, err := s.Float64()
	require.NoError(t, err)

	s.Seed(1)
	b, err := s.Float64()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestConcurrentDraws(t *testing.T) {
	s := NewSource(9)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_, err := s.Uniform([]float64{-1}, []float64{1}, ndarray.Shape{1})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}

func TestGlobal(t *testing.T) {
	assert.Same(t, Global(), Global())

	Seed(11)
	assert.True(t, Global().Seeded())
	seed, err := Global().InitialSeed()
	require.NoError(t, err)
	assert.Equal(t, int64(11), seed)
}
