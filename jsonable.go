package spaces

import (
	"fmt"

	"github.com/hupe1980/spaces/codec"
	"github.com/hupe1980/spaces/ndarray"
)

// EncodeSamples marshals the jsonable form of samples with c
// (codec.Default if nil).
func EncodeSamples(c codec.Codec, sp Space, samples []ndarray.Array[float64]) ([]byte, error) {
	c = codec.OrDefault(c)
	data, err := c.Marshal(sp.ToJSONable(samples))
	if err != nil {
		return nil, fmt.Errorf("encode samples with %s: %w", c.Name(), err)
	}
	return data, nil
}

// DecodeSamples unmarshals a list of jsonable samples with c
// (codec.Default if nil) and converts them with sp.FromJSONable.
func DecodeSamples(c codec.Codec, sp Space, data []byte) ([]ndarray.Array[float64], error) {
	c = codec.OrDefault(c)
	var raw []any
	if err := c.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode samples with %s: %w", c.Name(), err)
	}
	return sp.FromJSONable(raw)
}
