package spaces

import (
	"fmt"

	"github.com/hupe1980/spaces/codec"
	"github.com/hupe1980/spaces/internal/conv"
	"github.com/hupe1980/spaces/ndarray"
)

// Definition is the serializable description of a Box, as found in
// configuration files.
//
// Two forms are accepted. With Shape set, Low and High must be numbers and
// are broadcast to Shape. With Shape omitted, Low and High must be nested
// lists of the same shape. DType defaults to float32.
//
//	{"low": -1, "high": 1, "shape": [3]}
//	{"low": [0, -5], "high": [1, 5], "dtype": "float64"}
type Definition struct {
	Low   any    `json:"low"`
	High  any    `json:"high"`
	Shape []int  `json:"shape,omitempty"`
	DType string `json:"dtype,omitempty"`
}

// ParseDefinition decodes a Definition with c (codec.Default if nil).
func ParseDefinition(c codec.Codec, data []byte) (Definition, error) {
	var d Definition
	if err := codec.OrDefault(c).Unmarshal(data, &d); err != nil {
		return Definition{}, fmt.Errorf("parse space definition: %w", err)
	}
	return d, nil
}

// Marshal encodes the definition with c (codec.Default if nil).
func (d Definition) Marshal(c codec.Codec) ([]byte, error) {
	return codec.OrDefault(c).Marshal(d)
}

// Build constructs the space the definition describes.
func (d Definition) Build(optFns ...Option) (Space, error) {
	dt, err := ParseDType(d.DType)
	if err != nil {
		return nil, err
	}

	switch dt {
	case Float32:
		return buildBox[float32](d, optFns)
	case Float64:
		return buildBox[float64](d, optFns)
	case Int8:
		return buildBox[int8](d, optFns)
	case Int16:
		return buildBox[int16](d, optFns)
	case Int32:
		return buildBox[int32](d, optFns)
	case Int64:
		return buildBox[int64](d, optFns)
	case Uint8:
		return buildBox[uint8](d, optFns)
	case Uint16:
		return buildBox[uint16](d, optFns)
	case Uint32:
		return buildBox[uint32](d, optFns)
	case Uint64:
		return buildBox[uint64](d, optFns)
	default:
		return nil, &ErrUnknownDType{Name: d.DType}
	}
}

func buildBox[T ndarray.Number](d Definition, optFns []Option) (Space, error) {
	var (
		b   *Box[T]
		err error
	)
	if d.Shape != nil {
		b, err = buildScalarForm[T](d, optFns)
	} else {
		b, err = buildArrayForm[T](d, optFns)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func buildScalarForm[T ndarray.Number](d Definition, optFns []Option) (*Box[T], error) {
	low, ok := conv.ToFloat64(d.Low)
	if !ok {
		return nil, &ErrNotScalar{Field: "low", Value: d.Low}
	}
	high, ok := conv.ToFloat64(d.High)
	if !ok {
		return nil, &ErrNotScalar{Field: "high", Value: d.High}
	}
	return FromScalarBounds[T](low, high, ndarray.Shape(d.Shape), optFns...)
}

func buildArrayForm[T ndarray.Number](d Definition, optFns []Option) (*Box[T], error) {
	low, err := boundArray("low", d.Low)
	if err != nil {
		return nil, err
	}
	high, err := boundArray("high", d.High)
	if err != nil {
		return nil, err
	}
	return FromArrayBounds[T](low, high, optFns...)
}

func boundArray(field string, v any) (ndarray.Array[float64], error) {
	if v == nil || conv.IsNumber(v) {
		return ndarray.Array[float64]{}, &ErrNotArray{Field: field}
	}
	a, err := ndarray.FromNested(v)
	if err != nil {
		return ndarray.Array[float64]{}, &ErrNotArray{Field: field, cause: err}
	}
	return a, nil
}
