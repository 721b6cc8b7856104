package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Both codecs produce the same document for hypernum values; JSON exists for
// callers that want to avoid the go-json dependency at runtime.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }
