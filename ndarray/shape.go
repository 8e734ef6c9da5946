package ndarray

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape holds the dimensional extents of an array.
// The empty shape describes a 0-d array holding a single element.
type Shape []int

// ErrInvalidShape indicates a shape with a negative extent.
type ErrInvalidShape struct {
	Shape Shape
	Axis  int
}

func (e *ErrInvalidShape) Error() string {
	return fmt.Sprintf("invalid shape %s: negative extent on axis %d", e.Shape, e.Axis)
}

// Validate reports an error if any extent is negative.
func (s Shape) Validate() error {
	for i, d := range s {
		if d < 0 {
			return &ErrInvalidShape{Shape: s.Clone(), Axis: i}
		}
	}
	return nil
}

// Size returns the number of elements described by the shape.
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// NDim returns the number of dimensions.
func (s Shape) NDim() int { return len(s) }

// Equal reports whether both shapes have identical extents.
// A nil shape and an empty shape are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape that never aliases s.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// String renders the shape as a tuple, e.g. "(3,)" or "(3, 4)".
func (s Shape) String() string {
	switch len(s) {
	case 0:
		return "()"
	case 1:
		return "(" + strconv.Itoa(s[0]) + ",)"
	}
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// strides returns row-major strides in elements.
func (s Shape) strides() []int {
	st := make([]int, len(s))
	acc := 1
	for i := len(s) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= s[i]
	}
	return st
}
