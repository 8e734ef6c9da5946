// Package codec centralizes the byte encoding of jsonable samples and space
// definitions.
//
// The jsonable form of a sample carries no type or shape header, so the codec
// is the only thing that decides how numbers are written. Pick one codec per
// stream: both built-ins write JSON, but they may differ in float formatting.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// This is used by the CLI to select a codec from a flag value.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// WithIndent returns a copy of a built-in codec that indents its output.
// Other codecs are returned unchanged.
func WithIndent(c Codec, indent string) Codec {
	switch c := c.(type) {
	case JSON:
		c.Indent = indent
		return c
	case GoJSON:
		c.Indent = indent
		return c
	default:
		return c
	}
}

// Names lists the names accepted by ByName.
func Names() []string {
	return []string{"json", "go-json"}
}

// OrDefault returns c, or Default if c is nil.
func OrDefault(c Codec) Codec {
	if c == nil {
		return Default
	}
	return c
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	c = OrDefault(c)
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
