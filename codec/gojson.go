package codec

import gojson "github.com/goccy/go-json"

// GoJSON is a JSON codec backed by github.com/goccy/go-json.
//
// Samples and definitions only hold numbers and plain keys, so HTML escaping
// is skipped on both paths. A non-empty Indent pretty-prints one element per
// line, which keeps large sample batches diffable.
type GoJSON struct {
	Indent string
}

// Marshal encodes the value to JSON.
func (g GoJSON) Marshal(v any) ([]byte, error) {
	if g.Indent != "" {
		return gojson.MarshalIndent(v, "", g.Indent)
	}
	return gojson.MarshalNoEscape(v)
}

// Unmarshal decodes the JSON data into v.
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.UnmarshalNoEscape(data, v) }

// Name returns the unique name of the codec ("go-json").
func (GoJSON) Name() string { return "go-json" }

// Append encodes the value like Marshal and appends it to dst.
func (g GoJSON) Append(dst []byte, v any) ([]byte, error) {
	b, err := g.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append(dst, b...), nil
}
