package jsonrepair

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/mendjson/jsonrepair/internal/value"
)

// fastJSON is configured to match encoding/json's defaults; it's only
// used as an encode fast path, never for decoding.
var fastJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Encode renders v as canonical JSON text. Two cases fall back to the
// hand-written, order-preserving encoder in internal/value: a tree
// containing an arbitrary-precision integer too large for an int64,
// which jsoniter (like encoding/json) cannot round-trip, and a tree
// containing any object, since ToInterface represents an Object as a
// native Go map and both jsoniter and encoding/json sort map keys
// alphabetically, destroying the insertion order Object guarantees.
// Everything else — scalars and arrays of scalars — takes the
// jsoniter fast path.
func Encode(v *value.Value) string {
	if value.HasBigInt(v) || value.HasObj(v) {
		return value.Encode(v)
	}
	b, err := fastJSON.Marshal(value.ToInterface(v))
	if err != nil {
		return value.Encode(v)
	}
	return string(b)
}
