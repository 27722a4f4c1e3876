// Package jsonrepair is the public surface of the lenient JSON repair
// module: it turns malformed, truncated, or hand-edited JSON-like text
// into a best-effort value tree and, from there, canonical JSON text.
// It never returns an error — per the component design, there is no
// parse failure, only a more or less complete result.
//
//	out := jsonrepair.Repair(`{name: "Ada", "tags": [1, 2,]}`)
//	// out == `{"name":"Ada","tags":[1,2]}`
package jsonrepair

import (
	"github.com/mendjson/jsonrepair/internal/repair"
	"github.com/mendjson/jsonrepair/internal/value"
)

// Repair parses input leniently and returns canonical JSON text for
// the result. If nothing at all could be parsed, it returns "".
func Repair(input string) string {
	v := RepairValue(input)
	if v == nil {
		return ""
	}
	return Encode(v)
}

// RepairValue parses input leniently and returns the resulting value
// tree, or nil if nothing could be parsed.
func RepairValue(input string) *value.Value {
	return repair.New(input).Repair()
}
