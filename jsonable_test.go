package spaces

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/spaces/codec"
	"github.com/hupe1980/spaces/ndarray"
	"github.com/hupe1980/spaces/prng"
)

func TestEncodeSamples(t *testing.T) {
	b, err := NewBox(-10, 10, ndarray.Shape{1})
	require.NoError(t, err)

	data, err := EncodeSamples(codec.JSON{}, b, []ndarray.Array[float64]{ndarray.Vector(0.0), ndarray.Vector(-2.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `[[0.0], [-2.5]]`, string(data))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b, err := FromScalarBounds[float64](-1, 1, ndarray.Shape{2, 2}, WithSource(prng.NewSource(8)))
	require.NoError(t, err)

	samples, err := b.SampleN(10)
	require.NoError(t, err)

	for _, c := range []codec.Codec{nil, codec.JSON{}, codec.GoJSON{}} {
		name := "default"
		if c != nil {
			name = c.Name()
		}
		t.Run(name, func(t *testing.T) {
			data, err := EncodeSamples(c, b, samples)
			require.NoError(t, err)

			back, err := DecodeSamples(c, b, data)
			require.NoError(t, err)
			require.Len(t, back, len(samples))
			for i := range samples {
				assert.Equal(t, samples[i].Shape(), back[i].Shape())
				assert.InDeltaSlice(t, samples[i].Data(), back[i].Data(), 1e-12)
				assert.True(t, b.Contains(back[i]))
			}
		})
	}
}

func TestDecodeSamplesErrors(t *testing.T) {
	b, err := NewBox(0, 1, ndarray.Shape{2})
	require.NoError(t, err)

	_, err = DecodeSamples(nil, b, []byte(`{"not": "a list"}`))
	assert.Error(t, err)

	_, err = DecodeSamples(nil, b, []byte(`[[1, 2], [true, 2]]`))
	var mj *ErrMalformedJSONable
	require.ErrorAs(t, err, &mj)
	assert.Equal(t, 1, mj.Index)
}
