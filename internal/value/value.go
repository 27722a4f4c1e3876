// Package value defines the repaired JSON value tree produced by the
// lenient parser in internal/repair: a tagged union of Null, Bool, Int
// (arbitrary precision), Float, Str, Arr, and Obj, modeled the way the
// teacher's own mcvoid/json Value type tags a single struct rather than
// using an interface per variant.
package value

import (
	"math/big"
)

// Kind identifies which variant of Value is populated.
type Kind int

// Possible value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
	KindArr
	KindObj
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "string"
	case KindArr:
		return "array"
	case KindObj:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an immutable node of the repaired document tree. Once
// returned from a parser it must not be mutated; composite parsers
// build up Arr/Obj contents before wrapping them into a Value.
type Value struct {
	kind Kind
	b    bool
	i    *big.Int
	f    float64
	s    string
	arr  []*Value
	obj  *Object
}

// Null returns a new null value.
func Null() *Value { return &Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// Int wraps an arbitrary-precision integer.
func Int(i *big.Int) *Value { return &Value{kind: KindInt, i: i} }

// IntFromInt64 wraps a machine integer.
func IntFromInt64(i int64) *Value { return &Value{kind: KindInt, i: big.NewInt(i)} }

// Float wraps an IEEE-754 double.
func Float(f float64) *Value { return &Value{kind: KindFloat, f: f} }

// Str wraps a Unicode string.
func Str(s string) *Value { return &Value{kind: KindStr, s: s} }

// Arr wraps an ordered sequence of values.
func Arr(elems []*Value) *Value {
	if elems == nil {
		elems = []*Value{}
	}
	return &Value{kind: KindArr, arr: elems}
}

// Obj wraps an ordered key/value mapping.
func Obj(o *Object) *Value {
	if o == nil {
		o = NewObject()
	}
	return &Value{kind: KindObj, obj: o}
}

// Kind reports which variant this Value holds.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether v is the null value (or a nil *Value).
func (v *Value) IsNull() bool { return v == nil || v.kind == KindNull }

// Bool returns the boolean payload; ok is false if v is not a Bool.
func (v *Value) Bool() (_ bool, ok bool) {
	if v == nil || v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Int returns the integer payload; ok is false if v is not an Int.
func (v *Value) Int() (_ *big.Int, ok bool) {
	if v == nil || v.kind != KindInt {
		return nil, false
	}
	return v.i, true
}

// Float returns the float payload; ok is false if v is not a Float.
func (v *Value) Float() (_ float64, ok bool) {
	if v == nil || v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

// Str returns the string payload; ok is false if v is not a Str.
func (v *Value) Str() (_ string, ok bool) {
	if v == nil || v.kind != KindStr {
		return "", false
	}
	return v.s, true
}

// Arr returns the element slice; ok is false if v is not an Arr.
func (v *Value) Arr() (_ []*Value, ok bool) {
	if v == nil || v.kind != KindArr {
		return nil, false
	}
	return v.arr, true
}

// Obj returns the underlying Object; ok is false if v is not an Obj.
func (v *Value) Obj() (_ *Object, ok bool) {
	if v == nil || v.kind != KindObj {
		return nil, false
	}
	return v.obj, true
}

// AppendArr returns a new Arr value with elems appended, leaving v
// unchanged. If v is not an Arr it is returned as is.
func (v *Value) AppendArr(elems ...*Value) *Value {
	cur, ok := v.Arr()
	if !ok {
		return v
	}
	next := make([]*Value, 0, len(cur)+len(elems))
	next = append(next, cur...)
	next = append(next, elems...)
	return Arr(next)
}

// Object is an insertion-ordered string-keyed mapping. Last write to a
// given key wins locally (within a single Object); the object parser
// in internal/repair stops at a repeated key instead of overwriting,
// per the repair spec's cross-object duplicate-key rule.
type Object struct {
	keys []string
	m    map[string]*Value
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{m: make(map[string]*Value)}
}

// Has reports whether key has been set.
func (o *Object) Has(key string) bool {
	_, ok := o.m[key]
	return ok
}

// Get returns the value for key, or nil if absent.
func (o *Object) Get(key string) *Value {
	return o.m[key]
}

// Set assigns key to val, appending key to the insertion order only the
// first time it is seen.
func (o *Object) Set(key string, val *Value) {
	if _, exists := o.m[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.m[key] = val
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of properties.
func (o *Object) Len() int {
	return len(o.keys)
}

// Last returns the most recently inserted value, or nil if empty. Used
// by the dangling-array merge to inspect "the object's most-recent
// value" without a separate cursor.
func (o *Object) Last() *Value {
	if len(o.keys) == 0 {
		return nil
	}
	return o.m[o.keys[len(o.keys)-1]]
}

// SetLast replaces the value stored under the most recently inserted
// key. Used by the dangling-array merge to extend that value in place.
func (o *Object) SetLast(val *Value) {
	if len(o.keys) == 0 {
		return
	}
	o.m[o.keys[len(o.keys)-1]] = val
}
