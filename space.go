package spaces

import (
	"fmt"

	"github.com/hupe1980/spaces/ndarray"
)

// Space is the capability set shared by space descriptors.
//
// Samples are exchanged as float64 arrays; the element type of the space only
// governs how its own bounds are stored.
type Space interface {
	fmt.Stringer

	// Sample draws a random element of the space.
	Sample() (ndarray.Array[float64], error)

	// Contains reports whether x is an element of the space.
	Contains(x ndarray.Array[float64]) bool

	// ToJSONable converts samples into nested plain lists.
	ToJSONable(samples []ndarray.Array[float64]) []any

	// FromJSONable converts nested plain lists back into arrays.
	FromJSONable(data []any) ([]ndarray.Array[float64], error)

	// Shape returns the shape of the space's elements.
	Shape() ndarray.Shape

	// DType returns the element type the space stores its description in.
	DType() DType

	// Equal reports whether other describes the same space.
	Equal(other Space) bool
}
