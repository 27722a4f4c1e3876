package repair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArraySimple(t *testing.T) {
	p := New("[1,2,3]")
	p.sc.GetCh()
	v := p.parseArray()
	arr, ok := v.Arr()
	require.True(t, ok)
	require.Len(t, arr, 3)
	for i, want := range []int64{1, 2, 3} {
		bi, ok := arr[i].Int()
		require.True(t, ok)
		assert.Equal(t, want, bi.Int64())
	}
}

func TestParseArrayTrailingComma(t *testing.T) {
	p := New("[1,2,]")
	p.sc.GetCh()
	v := p.parseArray()
	arr, _ := v.Arr()
	assert.Len(t, arr, 2)
}

func TestParseArrayToleratesWrongCloser(t *testing.T) {
	p := New("[1,2}")
	p.sc.GetCh()
	v := p.parseArray()
	arr, _ := v.Arr()
	assert.Len(t, arr, 2)
}

func TestParseArrayUnclosedAtEOF(t *testing.T) {
	p := New("[1,2")
	p.sc.GetCh()
	v := p.parseArray()
	arr, _ := v.Arr()
	assert.Len(t, arr, 2)
}

func TestParseArrayEmbeddedKeyColonObject(t *testing.T) {
	p := New(`["a": 1, "b": 2]`)
	p.sc.GetCh()
	v := p.parseArray()
	arr, _ := v.Arr()
	require.Len(t, arr, 1)
	obj, ok := arr[0].Obj()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, obj.Keys())
}
