// Package conv provides checked conversions for decoded numeric values.
//
// Values produced by JSON decoders arrive as float64, json.Number or, for
// hand-built inputs, any Go numeric kind. These helpers normalize them and
// report an error instead of silently truncating.
//
// Use cases:
//   - Reading leaves of jsonable sample payloads
//   - Turning flat coordinate indices into bitmap members
package conv
