package ndarray

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/hupe1980/spaces/internal/conv"
)

// ErrMalformedNested indicates a nested list that is ragged or holds a
// non-numeric leaf.
type ErrMalformedNested struct {
	Path   string
	Reason string
}

func (e *ErrMalformedNested) Error() string {
	return fmt.Sprintf("malformed nested list at %s: %s", e.Path, e.Reason)
}

// Nested converts the array into nested []any lists of float64 leaves.
// A 0-d array yields the bare number; the zero Array yields nil.
func (a Array[T]) Nested() any {
	if a.IsZero() {
		return nil
	}
	return a.nested(0, 0)
}

func (a Array[T]) nested(axis, offset int) any {
	if axis == len(a.shape) {
		return float64(a.data[offset])
	}
	stride := 1
	for _, d := range a.shape[axis+1:] {
		stride *= d
	}
	out := make([]any, a.shape[axis])
	for i := range out {
		out[i] = a.nested(axis+1, offset+i*stride)
	}
	return out
}

// FromNested builds a float64 array from a nested list structure such as the
// output of a JSON decoder. Any slice or array kind is accepted as a list;
// leaves may be any Go numeric kind or json.Number. A bare number yields a
// 0-d array.
func FromNested(v any) (Array[float64], error) {
	shape := inferShape(reflect.ValueOf(v))
	data := make([]float64, 0, shape.Size())
	data, err := collect(reflect.ValueOf(v), shape, 0, "$", data)
	if err != nil {
		return Array[float64]{}, err
	}
	return Array[float64]{shape: shape, data: data}, nil
}

func isList(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	k := rv.Kind()
	return k == reflect.Slice || k == reflect.Array
}

func unwrap(rv reflect.Value) reflect.Value {
	for rv.IsValid() && rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	return rv
}

// inferShape follows the first element of every level.
func inferShape(rv reflect.Value) Shape {
	shape := Shape{}
	rv = unwrap(rv)
	for isList(rv) {
		shape = append(shape, rv.Len())
		if rv.Len() == 0 {
			break
		}
		rv = unwrap(rv.Index(0))
	}
	return shape
}

func collect(rv reflect.Value, shape Shape, axis int, path string, dst []float64) ([]float64, error) {
	rv = unwrap(rv)
	if axis == len(shape) {
		if !rv.IsValid() || isList(rv) {
			return nil, &ErrMalformedNested{Path: path, Reason: "expected a number"}
		}
		f, ok := conv.ToFloat64(rv.Interface())
		if !ok {
			return nil, &ErrMalformedNested{Path: path, Reason: fmt.Sprintf("non-numeric leaf of type %s", rv.Type())}
		}
		return append(dst, f), nil
	}
	if !isList(rv) {
		return nil, &ErrMalformedNested{Path: path, Reason: "expected a list"}
	}
	if rv.Len() != shape[axis] {
		return nil, &ErrMalformedNested{
			Path:   path,
			Reason: fmt.Sprintf("ragged list: expected %d elements, got %d", shape[axis], rv.Len()),
		}
	}
	var err error
	for i := 0; i < rv.Len(); i++ {
		dst, err = collect(rv.Index(i), shape, axis+1, path+"["+strconv.Itoa(i)+"]", dst)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}
