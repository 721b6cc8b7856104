// Package codec centralizes the JSON encoding of hypernum values.
//
// Complex and Quaternion values encode as objects with one field per
// component; vectors encode as arrays of their elements.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the codec used by vectors that were not given one.
var Default Codec = GoJSON{}
