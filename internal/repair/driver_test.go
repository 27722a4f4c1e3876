package repair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopLevelDriverSingleValue(t *testing.T) {
	p := New(`{"a":1}`)
	v := p.Repair()
	obj, ok := v.Obj()
	require.True(t, ok)
	a, _ := obj.Get("a").Int()
	assert.Equal(t, int64(1), a.Int64())
}

func TestTopLevelDriverEmptyInput(t *testing.T) {
	p := New("   ")
	v := p.Repair()
	assert.Nil(t, v)
}

func TestTopLevelDriverCollapsesConsecutiveObjects(t *testing.T) {
	p := New(`{"a":1}{"b":2}`)
	v := p.Repair()
	obj, ok := v.Obj()
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, obj.Keys())
}

func TestTopLevelDriverCollapsesConsecutiveArrays(t *testing.T) {
	p := New(`[1,2][3,4]`)
	v := p.Repair()
	arr, ok := v.Arr()
	require.True(t, ok)
	require.Len(t, arr, 2)
	a, _ := arr[0].Int()
	assert.Equal(t, int64(3), a.Int64())
	b, _ := arr[1].Int()
	assert.Equal(t, int64(4), b.Int64())
}

func TestTopLevelDriverDropsStrayCloser(t *testing.T) {
	p := New(`]{"a":1}`)
	v := p.Repair()
	obj, ok := v.Obj()
	require.True(t, ok)
	a, _ := obj.Get("a").Int()
	assert.Equal(t, int64(1), a.Int64())
}

func TestTopLevelDriverMixedTypesReturnedAsArray(t *testing.T) {
	p := New(`1 "two"`)
	v := p.Repair()
	arr, ok := v.Arr()
	require.True(t, ok)
	require.Len(t, arr, 2)
	s, _ := arr[1].Str()
	assert.Equal(t, "two", s)
}
