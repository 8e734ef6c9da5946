package ndarray

import (
	"fmt"
	"strings"
)

// Number is the set of element types an Array can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ErrSizeMismatch indicates that a flat slice does not fill the requested shape.
type ErrSizeMismatch struct {
	Shape  Shape
	Length int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("cannot reshape %d elements into shape %s", e.Length, e.Shape)
}

// Array is an immutable n-dimensional array stored in row-major order.
type Array[T Number] struct {
	shape Shape
	data  []T
}

// Full returns an array of the given shape with every element set to v.
// The shape must be valid (see Shape.Validate).
func Full[T Number](shape Shape, v T) Array[T] {
	data := make([]T, shape.Size())
	for i := range data {
		data[i] = v
	}
	return Array[T]{shape: shape.Clone(), data: data}
}

// Zeros returns an array of the given shape filled with zero.
func Zeros[T Number](shape Shape) Array[T] {
	return Array[T]{shape: shape.Clone(), data: make([]T, shape.Size())}
}

// FromSlice wraps a copy of data as an array of the given shape.
func FromSlice[T Number](data []T, shape ...int) (Array[T], error) {
	s := Shape(shape)
	if err := s.Validate(); err != nil {
		return Array[T]{}, err
	}
	if len(data) != s.Size() {
		return Array[T]{}, &ErrSizeMismatch{Shape: s.Clone(), Length: len(data)}
	}
	out := make([]T, len(data))
	copy(out, data)
	return Array[T]{shape: s.Clone(), data: out}, nil
}

// Vector returns a 1-d array holding values.
func Vector[T Number](values ...T) Array[T] {
	out := make([]T, len(values))
	copy(out, values)
	return Array[T]{shape: Shape{len(values)}, data: out}
}

// Scalar returns a 0-d array holding v.
func Scalar[T Number](v T) Array[T] {
	return Array[T]{shape: Shape{}, data: []T{v}}
}

// Cast converts every element of a to U using Go conversion rules.
func Cast[U, T Number](a Array[T]) Array[U] {
	out := make([]U, len(a.data))
	for i, v := range a.data {
		out[i] = U(v)
	}
	return Array[U]{shape: a.shape.Clone(), data: out}
}

// Shape returns a copy of the array's shape.
func (a Array[T]) Shape() Shape { return a.shape.Clone() }

// Size returns the number of elements.
func (a Array[T]) Size() int { return len(a.data) }

// IsZero reports whether a is the zero Array (never constructed).
func (a Array[T]) IsZero() bool { return a.shape == nil && a.data == nil }

// At returns the i-th element in row-major order.
func (a Array[T]) At(i int) T { return a.data[i] }

// Index returns the element at the given multi-index.
func (a Array[T]) Index(idx ...int) (T, error) {
	var zero T
	if len(idx) != len(a.shape) {
		return zero, fmt.Errorf("index has %d axes, array has %d", len(idx), len(a.shape))
	}
	flat := 0
	for axis, stride := range a.shape.strides() {
		if idx[axis] < 0 || idx[axis] >= a.shape[axis] {
			return zero, fmt.Errorf("index %d out of range for axis %d with extent %d", idx[axis], axis, a.shape[axis])
		}
		flat += idx[axis] * stride
	}
	return a.data[flat], nil
}

// Data returns a copy of the flat row-major elements.
func (a Array[T]) Data() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)
	return out
}

// Equal reports exact element-wise equality with matching shapes.
func (a Array[T]) Equal(other Array[T]) bool {
	if !a.shape.Equal(other.shape) {
		return false
	}
	for i := range a.data {
		if a.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String renders the array as nested brackets, e.g. "[[1 2] [3 4]]".
func (a Array[T]) String() string {
	if a.IsZero() {
		return "[]"
	}
	var sb strings.Builder
	a.format(&sb, 0, 0)
	return sb.String()
}

func (a Array[T]) format(sb *strings.Builder, axis, offset int) {
	if axis == len(a.shape) {
		fmt.Fprint(sb, a.data[offset])
		return
	}
	stride := 1
	for _, d := range a.shape[axis+1:] {
		stride *= d
	}
	sb.WriteByte('[')
	for i := 0; i < a.shape[axis]; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		a.format(sb, axis+1, offset+i*stride)
	}
	sb.WriteByte(']')
}
