// Package prng provides the uniform random source that spaces draw samples from.
//
// A Source is a seeded, mutex-guarded stream of draws: every call is
// serialized, so a fixed seed and a fixed call order reproduce the same
// samples. A process-wide Source is available through Global. It is created
// lazily and refuses to produce values until it has been seeded:
//
//	prng.Seed(42)
//	x, err := prng.Global().Uniform(low, high, shape)
//
// Code that wants isolation (tests, parallel environments) should construct
// its own Source with NewSource, or implement Uniform directly.
package prng
