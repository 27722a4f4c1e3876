package value

import (
	"strconv"
)

// escapeTable maps ASCII bytes to their JSON escape character. 0 means
// no escape needed; 0x01 is a sentinel meaning "encode as \u00XX".
// Ported from the teacher's pkg/json/escape.go table-driven approach.
var escapeTable [256]byte

const hexDigits = "0123456789abcdef"

func init() {
	escapeTable['"'] = '"'
	escapeTable['\\'] = '\\'
	escapeTable['\b'] = 'b'
	escapeTable['\f'] = 'f'
	escapeTable['\n'] = 'n'
	escapeTable['\r'] = 'r'
	escapeTable['\t'] = 't'

	for i := byte(0); i < 0x20; i++ {
		if escapeTable[i] == 0 {
			escapeTable[i] = 0x01
		}
	}
}

// appendEscapedString appends the JSON-escaped contents of s (without
// surrounding quotes) to buf.
func appendEscapedString(buf []byte, s string) []byte {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		buf = append(buf, s[start:i]...)
		esc := escapeTable[c]
		if esc == 0x01 {
			buf = append(buf, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0x0F])
		} else {
			buf = append(buf, '\\', esc)
		}
		start = i + 1
	}
	return append(buf, s[start:]...)
}

// Encode renders v as canonical JSON text (RFC 8259 escaping, no
// indentation, insertion order preserved for objects).
func Encode(v *Value) string {
	return string(appendValue(nil, v))
}

func appendValue(buf []byte, v *Value) []byte {
	if v == nil {
		return append(buf, "null"...)
	}
	switch v.kind {
	case KindNull:
		return append(buf, "null"...)
	case KindBool:
		if v.b {
			return append(buf, "true"...)
		}
		return append(buf, "false"...)
	case KindInt:
		if v.i == nil {
			return append(buf, '0')
		}
		return append(buf, v.i.String()...)
	case KindFloat:
		return strconv.AppendFloat(buf, v.f, 'g', -1, 64)
	case KindStr:
		buf = append(buf, '"')
		buf = appendEscapedString(buf, v.s)
		return append(buf, '"')
	case KindArr:
		buf = append(buf, '[')
		for i, elem := range v.arr {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendValue(buf, elem)
		}
		return append(buf, ']')
	case KindObj:
		buf = append(buf, '{')
		for i, key := range v.obj.Keys() {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = append(buf, '"')
			buf = appendEscapedString(buf, key)
			buf = append(buf, '"', ':')
			buf = appendValue(buf, v.obj.Get(key))
		}
		return append(buf, '}')
	default:
		return append(buf, "null"...)
	}
}

// ToInterface converts v to the native Go representation jsoniter (and
// encoding/json) understand: map[string]interface{}, []interface{},
// string, bool, nil, float64, or — for integers that fit — int64.
// Integers that don't fit in an int64 are returned as the *big.Int
// itself.
func ToInterface(v *Value) interface{} {
	if v == nil {
		return nil
	}
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindInt:
		if v.i != nil && v.i.IsInt64() {
			return v.i.Int64()
		}
		return v.i
	case KindFloat:
		return v.f
	case KindStr:
		return v.s
	case KindArr:
		out := make([]interface{}, len(v.arr))
		for i, e := range v.arr {
			out[i] = ToInterface(e)
		}
		return out
	case KindObj:
		out := make(map[string]interface{}, v.obj.Len())
		for _, k := range v.obj.Keys() {
			out[k] = ToInterface(v.obj.Get(k))
		}
		return out
	default:
		return nil
	}
}

// HasBigInt reports whether v or any of its descendants holds an
// integer too large for int64 — jsoniter (and encoding/json) cannot
// round-trip such values through ToInterface, so callers use this to
// decide whether to fall back to Encode.
func HasBigInt(v *Value) bool {
	if v == nil {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i != nil && !v.i.IsInt64()
	case KindArr:
		for _, e := range v.arr {
			if HasBigInt(e) {
				return true
			}
		}
		return false
	case KindObj:
		for _, k := range v.obj.Keys() {
			if HasBigInt(v.obj.Get(k)) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// HasObj reports whether v or any of its descendants is an Obj. A
// native Go map has no ordering, so ToInterface loses the insertion
// order Object guarantees as soon as one appears anywhere in the
// tree; callers use this to decide whether a fast map-based encoder is
// safe to use or whether the order-preserving Encode is required.
func HasObj(v *Value) bool {
	if v == nil {
		return false
	}
	switch v.kind {
	case KindObj:
		return true
	case KindArr:
		for _, e := range v.arr {
			if HasObj(e) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
