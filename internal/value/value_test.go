package value_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mendjson/jsonrepair/internal/value"
)

func TestValueAccessors(t *testing.T) {
	n := value.Null()
	assert.True(t, n.IsNull())
	assert.Equal(t, value.KindNull, n.Kind())

	b := value.Bool(true)
	got, ok := b.Bool()
	require.True(t, ok)
	assert.True(t, got)

	i := value.IntFromInt64(42)
	bi, ok := i.Int()
	require.True(t, ok)
	assert.Equal(t, int64(42), bi.Int64())

	f := value.Float(3.5)
	gf, ok := f.Float()
	require.True(t, ok)
	assert.Equal(t, 3.5, gf)

	s := value.Str("hi")
	gs, ok := s.Str()
	require.True(t, ok)
	assert.Equal(t, "hi", gs)

	// Wrong-kind accessors report ok=false rather than panicking.
	_, ok = b.Int()
	assert.False(t, ok)
	_, ok = i.Str()
	assert.False(t, ok)
}

func TestValueNilSafety(t *testing.T) {
	var v *value.Value
	assert.True(t, v.IsNull())
	assert.Equal(t, value.KindNull, v.Kind())
	_, ok := v.Bool()
	assert.False(t, ok)
}

func TestArrDefaultsToEmptySlice(t *testing.T) {
	v := value.Arr(nil)
	arr, ok := v.Arr()
	require.True(t, ok)
	assert.NotNil(t, arr)
	assert.Len(t, arr, 0)
}

func TestObjectInsertionOrderAndLastWriteWins(t *testing.T) {
	o := value.NewObject()
	o.Set("b", value.IntFromInt64(2))
	o.Set("a", value.IntFromInt64(1))
	o.Set("b", value.IntFromInt64(20))

	assert.Equal(t, []string{"b", "a"}, o.Keys())
	assert.Equal(t, 2, o.Len())

	bv, _ := o.Get("b").Int()
	assert.Equal(t, int64(20), bv.Int64())
}

func TestObjectLastAndSetLast(t *testing.T) {
	o := value.NewObject()
	assert.Nil(t, o.Last())

	o.Set("tags", value.Arr([]*value.Value{value.IntFromInt64(1)}))
	o.Set("name", value.Str("x"))

	last := o.Last()
	s, _ := last.Str()
	assert.Equal(t, "x", s)

	o.SetLast(value.Str("y"))
	s, _ = o.Get("name").Str()
	assert.Equal(t, "y", s)
}

func TestEncode(t *testing.T) {
	o := value.NewObject()
	o.Set("name", value.Str(`say "hi"`))
	o.Set("n", value.IntFromInt64(7))
	o.Set("arr", value.Arr([]*value.Value{value.Bool(true), value.Null()}))

	got := value.Encode(value.Obj(o))
	assert.Equal(t, `{"name":"say \"hi\"","n":7,"arr":[true,null]}`, got)
}

func TestHasBigIntAndHasObj(t *testing.T) {
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	v := value.Arr([]*value.Value{value.Int(huge)})
	assert.True(t, value.HasBigInt(v))
	assert.False(t, value.HasObj(v))

	withObj := value.Arr([]*value.Value{value.Obj(value.NewObject())})
	assert.False(t, value.HasBigInt(withObj))
	assert.True(t, value.HasObj(withObj))
}
