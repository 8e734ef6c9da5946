package spaces

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/spaces/ndarray"
	"github.com/hupe1980/spaces/testutil"
)

func TestBasicMetricsCollector(t *testing.T) {
	metrics := &BasicMetricsCollector{}

	b, err := NewBox(-1, 1, ndarray.Shape{2, 3},
		WithMetricsCollector(metrics),
		WithSource(testutil.FixedUniform{Fraction: 0.5}),
	)
	require.NoError(t, err)

	_, err = NewBox(-1, 1, ndarray.Shape{-1}, WithMetricsCollector(metrics))
	require.Error(t, err)

	_, err = b.SampleN(4)
	require.NoError(t, err)

	b.Contains(ndarray.Zeros[float64](ndarray.Shape{2, 3}))
	b.Contains(ndarray.Zeros[float64](ndarray.Shape{6}))

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.ConstructCount)
	assert.Equal(t, int64(1), stats.ConstructErrors)
	assert.Equal(t, int64(4), stats.SampleCount)
	assert.Equal(t, int64(0), stats.SampleErrors)
	assert.Equal(t, int64(24), stats.SampledValues)
	assert.GreaterOrEqual(t, stats.SampleAvgNanos, int64(0))
	assert.Equal(t, int64(2), stats.ContainsCount)
	assert.Equal(t, int64(1), stats.ContainsHits)
}

func TestBasicMetricsCollectorEmpty(t *testing.T) {
	var metrics BasicMetricsCollector
	assert.Equal(t, BasicMetricsStats{}, metrics.GetStats())
}
