// Package ndarray provides the small n-dimensional array value used by spaces.
//
// An Array stores its elements in a flat, row-major slice next to its Shape.
// Arrays are values: accessors hand out copies, so an Array held by a space
// cannot be mutated through the slices it returns.
//
//	a := ndarray.Full(ndarray.Shape{2, 3}, float32(-1))
//	b := ndarray.Cast[float64](a)
//	nested := b.Nested() // [][]any{{-1, -1, -1}, {-1, -1, -1}} as []any
package ndarray
