package repair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mendjson/jsonrepair/internal/ctxstack"
)

func TestParseCommentBlock(t *testing.T) {
	p := New("/* a comment */123")
	ok := p.parseComment()
	require.True(t, ok)
	assert.Equal(t, "123", p.sc.Remaining())
}

func TestParseCommentBlockUnterminatedJumpsToEOF(t *testing.T) {
	p := New("/* never closes")
	ok := p.parseComment()
	require.True(t, ok)
	assert.True(t, p.sc.EOS())
}

func TestParseCommentLine(t *testing.T) {
	p := New("// trailing note\n123")
	ok := p.parseComment()
	require.True(t, ok)
	assert.Equal(t, "123", p.sc.Remaining())
}

func TestParseCommentHash(t *testing.T) {
	p := New("# note\n123")
	ok := p.parseComment()
	require.True(t, ok)
	assert.Equal(t, "123", p.sc.Remaining())
}

func TestParseCommentLineWithNoNewlineStopsAtArrayCloser(t *testing.T) {
	p := New("// note]")
	p.ctx.Push(ctxstack.Array)
	ok := p.parseComment()
	require.True(t, ok)
	assert.Equal(t, "]", p.sc.Remaining())
}

func TestParseCommentLineStopsAtCarriageReturn(t *testing.T) {
	p := New("// note\r123")
	ok := p.parseComment()
	require.True(t, ok)
	assert.Equal(t, "123", p.sc.Remaining())
}

func TestParseCommentLineObjectKeyStopsAtColon(t *testing.T) {
	p := New("// note:123")
	p.ctx.Push(ctxstack.ObjectKey)
	ok := p.parseComment()
	require.True(t, ok)
	assert.Equal(t, ":123", p.sc.Remaining())
}

func TestParseCommentLineObjectValueStopsAtBrace(t *testing.T) {
	p := New("// note}123")
	p.ctx.Push(ctxstack.ObjectValue)
	ok := p.parseComment()
	require.True(t, ok)
	assert.Equal(t, "}123", p.sc.Remaining())
}

func TestParseCommentStraySlash(t *testing.T) {
	p := New("/123")
	ok := p.parseComment()
	require.True(t, ok)
	assert.Equal(t, "123", p.sc.Remaining())
}

func TestParseCommentNotAComment(t *testing.T) {
	p := New("123")
	ok := p.parseComment()
	assert.False(t, ok)
	assert.Equal(t, "123", p.sc.Remaining())
}
