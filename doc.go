// Package spaces describes the legal range of vector-valued quantities, such
// as the observations and actions of a simulated environment.
//
// The central type is Box, an n-dimensional interval with independent,
// inclusive lower and upper bounds per coordinate.
//
// # Construction
//
// A Box is built from either scalar bounds broadcast to a shape, or from two
// arrays of identical shape:
//
//	b, _ := spaces.NewBox(-1, 1, ndarray.Shape{3, 4}) // float32
//	b, _ := spaces.FromScalarBounds[uint8](0, 255, ndarray.Shape{84, 84})
//	b, _ := spaces.FromArrayBounds[float64](lowArray, highArray)
//
// Definitions read from configuration go through Definition, which dispatches
// to the right form and element type at runtime:
//
//	def, _ := spaces.ParseDefinition(codec.Default, data)
//	space, _ := def.Build()
//
// # Sampling
//
// Samples are drawn from a prng.Uniform. By default a Box uses the
// process-wide prng.Global source, which must be seeded first:
//
//	prng.Seed(42)
//	x, err := b.Sample()
//
// Samples are always float64 arrays, whatever the element type of the box.
// Integer boxes are not rounded or clamped.
//
// # Jsonable form
//
// ToJSONable and FromJSONable convert samples to and from nested []any lists
// with no shape or type header; EncodeSamples and DecodeSamples add a codec.
package spaces
