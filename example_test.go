package spaces_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/spaces"
	"github.com/hupe1980/spaces/codec"
	"github.com/hupe1980/spaces/ndarray"
	"github.com/hupe1980/spaces/prng"
	"github.com/hupe1980/spaces/testutil"
)

// Example_actionSpace demonstrates a one-dimensional action space.
func Example_actionSpace() {
	prng.Seed(42)

	box, err := spaces.NewBox(-10, 10, ndarray.Shape{1})
	if err != nil {
		log.Fatal(err)
	}

	x, err := box.Sample()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(box)
	fmt.Println(box.Contains(x))
	fmt.Println(box.Contains(ndarray.Vector(0.0)))
	fmt.Println(box.Contains(ndarray.Vector(11.0)))
	// Output:
	// Box(1,)
	// true
	// true
	// false
}

// ExampleFromArrayBounds demonstrates per-coordinate bounds.
func ExampleFromArrayBounds() {
	low := ndarray.Vector(-1.0, 0.0, 10.0)
	high := ndarray.Vector(1.0, 1.0, 20.0)

	box, err := spaces.FromArrayBounds[float64](low, high)
	if err != nil {
		log.Fatal(err)
	}

	mid, err := box.SampleWith(testutil.FixedUniform{Fraction: 0.5})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(box.DType(), box.Shape())
	fmt.Println(mid)
	// Output:
	// float64 (3,)
	// [0 0.5 15]
}

// ExampleDefinition_Build demonstrates building a space from configuration.
func ExampleDefinition_Build() {
	def, err := spaces.ParseDefinition(codec.JSON{}, []byte(`{"low": 0, "high": 255, "shape": [2, 2], "dtype": "uint8"}`))
	if err != nil {
		log.Fatal(err)
	}

	space, err := def.Build()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(space, space.DType())
	// Output: Box(2, 2) uint8
}

// ExampleEncodeSamples demonstrates the jsonable wire format.
func ExampleEncodeSamples() {
	box, err := spaces.NewBox(-10, 10, ndarray.Shape{1})
	if err != nil {
		log.Fatal(err)
	}

	data, err := spaces.EncodeSamples(codec.JSON{}, box, []ndarray.Array[float64]{ndarray.Vector(0.0)})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(data))
	// Output: [[0]]
}
