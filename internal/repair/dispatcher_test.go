package repair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNumberStartIncludesLeadingDot(t *testing.T) {
	assert.True(t, isNumberStart('.'))
	assert.True(t, isNumberStart('-'))
	assert.True(t, isNumberStart('5'))
	assert.False(t, isNumberStart('a'))
}

func TestDispatchRoutesLeadingDotToNumber(t *testing.T) {
	p := New(".5")
	out := p.dispatch()
	require.False(t, out.isStop())
	f, ok := out.val.Float()
	require.True(t, ok)
	assert.Equal(t, 0.5, f)
}

func TestDispatchTreatsTopLevelStrayCloserAsTerminator(t *testing.T) {
	p := New("]")
	out := p.dispatch()
	assert.True(t, out.isStop())
}
