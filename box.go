package spaces

import (
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/hupe1980/spaces/internal/conv"
	"github.com/hupe1980/spaces/ndarray"
	"github.com/hupe1980/spaces/prng"
)

// Tolerances used by Equal when comparing bounds.
const (
	equalAbsTol = 1e-8
	equalRelTol = 1e-5
)

// Box is an n-dimensional interval: every coordinate i is bounded by
// Low[i] <= x[i] <= High[i]. T is the element type the bounds are stored in.
//
// A Box is immutable after construction and safe for concurrent use as long
// as its random source is.
type Box[T ndarray.Number] struct {
	low  ndarray.Array[T]
	high ndarray.Array[T]

	// float64 views of the bounds, shared by Sample and Contains.
	lowF  []float64
	highF []float64

	opts options
}

var _ Space = (*Box[float32])(nil)

// FromScalarBounds builds a Box of the given shape whose coordinates all
// share the bounds [low, high]. The bounds are cast to T.
func FromScalarBounds[T ndarray.Number](low, high float64, shape ndarray.Shape, optFns ...Option) (*Box[T], error) {
	o := applyOptions(optFns)
	if err := shape.Validate(); err != nil {
		err = &ErrInvalidShape{Shape: shape.Clone(), cause: err}
		o.metrics.RecordConstruct(err)
		o.logger.LogConstruct("scalar", shape, DTypeOf[T](), err)
		return nil, err
	}
	return newBox(
		"scalar",
		ndarray.Cast[T](ndarray.Full(shape, low)),
		ndarray.Cast[T](ndarray.Full(shape, high)),
		o,
	), nil
}

// FromArrayBounds builds a Box from per-coordinate bounds. low and high must
// have the same shape; they are cast to T.
func FromArrayBounds[T, U ndarray.Number](low, high ndarray.Array[U], optFns ...Option) (*Box[T], error) {
	o := applyOptions(optFns)

	var err error
	switch {
	case low.IsZero():
		err = &ErrNotArray{Field: "low"}
	case high.IsZero():
		err = &ErrNotArray{Field: "high"}
	case !low.Shape().Equal(high.Shape()):
		err = &ErrShapeMismatch{Low: low.Shape(), High: high.Shape()}
	}
	if err != nil {
		o.metrics.RecordConstruct(err)
		o.logger.LogConstruct("array", nil, DTypeOf[T](), err)
		return nil, err
	}

	return newBox("array", ndarray.Cast[T](low), ndarray.Cast[T](high), o), nil
}

// NewBox builds a float32 Box from scalar bounds broadcast to shape.
func NewBox(low, high float64, shape ndarray.Shape, optFns ...Option) (*Box[float32], error) {
	return FromScalarBounds[float32](low, high, shape, optFns...)
}

// NewBoxFromArrays builds a float32 Box from array bounds.
func NewBoxFromArrays(low, high ndarray.Array[float64], optFns ...Option) (*Box[float32], error) {
	return FromArrayBounds[float32](low, high, optFns...)
}

func newBox[T ndarray.Number](form string, low, high ndarray.Array[T], o options) *Box[T] {
	b := &Box[T]{
		low:   low,
		high:  high,
		lowF:  ndarray.Cast[float64](low).Data(),
		highF: ndarray.Cast[float64](high).Data(),
		opts:  o,
	}
	b.opts.logger = o.logger.WithShape(low.Shape()).WithDType(DTypeOf[T]())
	o.metrics.RecordConstruct(nil)
	o.logger.LogConstruct(form, low.Shape(), DTypeOf[T](), nil)
	return b
}

// Low returns the inclusive lower bounds.
func (b *Box[T]) Low() ndarray.Array[T] { return b.low }

// High returns the inclusive upper bounds.
func (b *Box[T]) High() ndarray.Array[T] { return b.high }

// Shape returns the shape of the box's elements.
func (b *Box[T]) Shape() ndarray.Shape { return b.low.Shape() }

// DType returns the element type of the bounds.
func (b *Box[T]) DType() DType { return DTypeOf[T]() }

// Sample draws one value per coordinate, uniformly over [low[i], high[i]],
// from the source configured with WithSource (prng.Global by default).
func (b *Box[T]) Sample() (ndarray.Array[float64], error) {
	return b.SampleWith(b.opts.source)
}

// SampleWith draws a sample from src instead of the configured source.
//
// The result is float64 for every T. Integer boxes get non-integral values;
// no rounding or clamping to the integer range is applied.
func (b *Box[T]) SampleWith(src prng.Uniform) (ndarray.Array[float64], error) {
	if src == nil {
		return ndarray.Array[float64]{}, ErrUninitializedRandomSource
	}
	start := time.Now()
	x, err := src.Uniform(b.lowF, b.highF, b.low.Shape())
	b.opts.metrics.RecordSample(len(b.lowF), time.Since(start), err)
	b.opts.logger.LogSample(err)
	if err != nil {
		return ndarray.Array[float64]{}, fmt.Errorf("sample %s: %w", b, err)
	}
	return x, nil
}

// SampleN draws n samples in order from the configured source.
func (b *Box[T]) SampleN(n int) ([]ndarray.Array[float64], error) {
	if n < 0 {
		return nil, ErrInvalidCount
	}
	out := make([]ndarray.Array[float64], n)
	for i := range out {
		x, err := b.Sample()
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

// Contains reports whether x has the box's shape and lies within the bounds.
// Both bounds are inclusive. A shape mismatch yields false.
func (b *Box[T]) Contains(x ndarray.Array[float64]) bool {
	hit := b.contains(x)
	b.opts.metrics.RecordContains(hit)
	return hit
}

func (b *Box[T]) contains(x ndarray.Array[float64]) bool {
	if x.IsZero() || !x.Shape().Equal(b.low.Shape()) {
		return false
	}
	for i := range b.lowF {
		v := x.At(i)
		// Written as a negated conjunction so NaN is rejected.
		if !(v >= b.lowF[i] && v <= b.highF[i]) {
			return false
		}
	}
	return true
}

// Violations returns the flat (row-major) indices of the coordinates of x
// that fall outside the bounds.
func (b *Box[T]) Violations(x ndarray.Array[float64]) (*roaring.Bitmap, error) {
	if x.IsZero() || !x.Shape().Equal(b.low.Shape()) {
		return nil, &ErrDimensionMismatch{Expected: b.low.Shape(), Actual: x.Shape()}
	}
	bm := roaring.New()
	for i := range b.lowF {
		v := x.At(i)
		if v >= b.lowF[i] && v <= b.highF[i] {
			continue
		}
		idx, err := conv.IntToUint32(i)
		if err != nil {
			return nil, err
		}
		bm.Add(idx)
	}
	return bm, nil
}

// ToJSONable converts samples into nested []any lists of float64.
func (b *Box[T]) ToJSONable(samples []ndarray.Array[float64]) []any {
	out := make([]any, len(samples))
	for i, s := range samples {
		out[i] = s.Nested()
	}
	return out
}

// FromJSONable converts nested lists back into float64 arrays.
//
// The element type of the box is not applied, and the shapes of the decoded
// arrays are not checked against the box.
func (b *Box[T]) FromJSONable(data []any) ([]ndarray.Array[float64], error) {
	out := make([]ndarray.Array[float64], len(data))
	for i, v := range data {
		a, err := ndarray.FromNested(v)
		if err != nil {
			err = &ErrMalformedJSONable{Index: i, cause: err}
			b.opts.logger.LogDecode(len(data), err)
			return nil, err
		}
		out[i] = a
	}
	b.opts.logger.LogDecode(len(data), nil)
	return out, nil
}

// Equal reports whether other is a box with the same DType and shape whose
// bounds are approximately equal. Boxes of different shapes are never equal.
// Element types that share a DType (int and int64 on 64-bit platforms)
// compare by value. A NaN bound is never close to anything, so a box with
// NaN bounds is not equal even to itself.
func (b *Box[T]) Equal(other Space) bool {
	o, ok := other.(floatBounder)
	if !ok || b == nil || other == nil {
		return false
	}
	lowF, highF, ok := o.floatBounds()
	if !ok {
		return false
	}
	if b.DType() != other.DType() || !b.low.Shape().Equal(other.Shape()) {
		return false
	}
	return allClose(b.lowF, lowF) && allClose(b.highF, highF)
}

// floatBounder is implemented by every Box instantiation.
type floatBounder interface {
	floatBounds() (low, high []float64, ok bool)
}

// floatBounds reports ok=false for a nil box.
func (b *Box[T]) floatBounds() (low, high []float64, ok bool) {
	if b == nil {
		return nil, nil, false
	}
	return b.lowF, b.highF, true
}

func allClose(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !scalar.EqualWithinAbsOrRel(a[i], b[i], equalAbsTol, equalRelTol) {
			return false
		}
	}
	return true
}

// Definition returns the array-form definition of the box.
func (b *Box[T]) Definition() Definition {
	return Definition{
		Low:   b.low.Nested(),
		High:  b.high.Nested(),
		DType: b.DType().String(),
	}
}

// String returns e.g. "Box(3, 4)".
func (b *Box[T]) String() string {
	return "Box" + b.low.Shape().String()
}
