package spaces

import (
	"errors"
	"fmt"

	"github.com/hupe1980/spaces/ndarray"
	"github.com/hupe1980/spaces/prng"
)

var (
	// ErrConstruction is matched (errors.Is) by every error that prevents a
	// space from being built.
	ErrConstruction = errors.New("invalid space construction")

	// ErrUninitializedRandomSource is returned when sampling before the
	// random source has been seeded.
	ErrUninitializedRandomSource = prng.ErrUninitialized

	// ErrRangeOverflow is returned when sampling a box with a coordinate whose
	// width high-low is not finite, such as an unbounded coordinate.
	ErrRangeOverflow = prng.ErrRangeOverflow

	// ErrInvalidCount is returned when a negative number of samples is requested.
	ErrInvalidCount = errors.New("sample count must not be negative")
)

// ErrShapeMismatch indicates array bounds whose shapes differ.
// It is a ConstructionError: errors.Is(err, ErrConstruction) holds.
type ErrShapeMismatch struct {
	Low  ndarray.Shape
	High ndarray.Shape
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch: low has shape %s, high has shape %s", e.Low, e.High)
}

func (e *ErrShapeMismatch) Is(target error) bool { return target == ErrConstruction }

// ErrInvalidShape indicates a requested shape with a negative extent.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidShape struct {
	Shape ndarray.Shape
	cause error
}

func (e *ErrInvalidShape) Error() string {
	return fmt.Sprintf("invalid shape: %s", e.Shape)
}

func (e *ErrInvalidShape) Unwrap() error { return e.cause }

func (e *ErrInvalidShape) Is(target error) bool { return target == ErrConstruction }

// ErrNotScalar indicates that the scalar form received a non-scalar bound.
type ErrNotScalar struct {
	Field string
	Value any
}

func (e *ErrNotScalar) Error() string {
	return fmt.Sprintf("%s must be a scalar when shape is given, got %T", e.Field, e.Value)
}

func (e *ErrNotScalar) Is(target error) bool { return target == ErrConstruction }

// ErrNotArray indicates that the array form received a bound that is not a
// well-formed array.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrNotArray struct {
	Field string
	cause error
}

func (e *ErrNotArray) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s must be an array when shape is omitted: %v", e.Field, e.cause)
	}
	return fmt.Sprintf("%s must be an array when shape is omitted", e.Field)
}

func (e *ErrNotArray) Unwrap() error { return e.cause }

func (e *ErrNotArray) Is(target error) bool { return target == ErrConstruction }

// ErrUnknownDType indicates an unsupported element type name.
type ErrUnknownDType struct {
	Name string
}

func (e *ErrUnknownDType) Error() string {
	return fmt.Sprintf("unknown dtype: %q", e.Name)
}

func (e *ErrUnknownDType) Is(target error) bool { return target == ErrConstruction }

// ErrDimensionMismatch indicates a value whose shape differs from the space.
type ErrDimensionMismatch struct {
	Expected ndarray.Shape
	Actual   ndarray.Shape
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// ErrMalformedJSONable indicates a jsonable element that is not a
// rectangular nested list of numbers.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrMalformedJSONable struct {
	Index int
	cause error
}

func (e *ErrMalformedJSONable) Error() string {
	return fmt.Sprintf("malformed jsonable sample %d: %v", e.Index, e.cause)
}

func (e *ErrMalformedJSONable) Unwrap() error { return e.cause }
