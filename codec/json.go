package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Notes:
// - NaN and ±Inf are not representable in JSON; marshaling a sample that
//   contains them fails.
// - Unmarshal into `any` yields float64 leaves, which is what
//   spaces.FromJSONable expects.
type JSON struct {
	Indent string
}

// Marshal encodes the value to JSON, indented when Indent is set.
func (j JSON) Marshal(v any) ([]byte, error) {
	if j.Indent != "" {
		return json.MarshalIndent(v, "", j.Indent)
	}
	return json.Marshal(v)
}

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
var Default Codec = GoJSON{}
