package repair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mendjson/jsonrepair/internal/ctxstack"
)

func TestParseStringSimple(t *testing.T) {
	p := New(`"hello"`)
	v := p.parseString()
	s, ok := v.Str()
	require.True(t, ok)
	assert.Equal(t, "hello", s)
}

func TestParseStringEscapes(t *testing.T) {
	p := New(`"a\nb\tc\"d"`)
	v := p.parseString()
	s, _ := v.Str()
	assert.Equal(t, "a\nb\tc\"d", s)
}

func TestParseStringInvalidHexEscapeKeepsLiteral(t *testing.T) {
	p := New(`"val\xZZ"`)
	v := p.parseString()
	s, _ := v.Str()
	assert.Equal(t, `val\xZZ`, s)
}

func TestParseStringUnicodeEscape(t *testing.T) {
	input := "\"\\u0041\\u0042\""
	p := New(input)
	v := p.parseString()
	s, _ := v.Str()
	assert.Equal(t, "AB", s)
}

func TestParseStringSingleQuoted(t *testing.T) {
	p := New(`'hello'`)
	v := p.parseString()
	s, _ := v.Str()
	assert.Equal(t, "hello", s)
}

func TestParseStringInternalQuoteKept(t *testing.T) {
	p := New(`"lorem "ipsum" sic"}`)
	v := p.parseString()
	s, _ := v.Str()
	assert.Equal(t, `lorem "ipsum" sic`, s)
	assert.Equal(t, "}", p.sc.Remaining())
}

func TestParseStringArrayContextAdjacentQuotes(t *testing.T) {
	p := New(`"a" "b"]`)
	p.ctx.Push(ctxstack.Array)
	first := p.parseString()
	s1, _ := first.Str()
	assert.Equal(t, "a", s1)

	p.sc.SkipWS()
	second := p.parseString()
	s2, _ := second.Str()
	assert.Equal(t, "b", s2)
}

func TestParseStringMissingQuotesObjectKey(t *testing.T) {
	p := New(`name: "Alice"`)
	p.ctx.Push(ctxstack.ObjectKey)
	v := p.parseString()
	s, _ := v.Str()
	assert.Equal(t, "name", s)
	assert.Equal(t, ": \"Alice\"", p.sc.Remaining())
}

func TestParseStringLoneQuoteCharacter(t *testing.T) {
	p := New(`"`)
	v := p.parseString()
	s, ok := v.Str()
	require.True(t, ok)
	assert.Equal(t, `"`, s)
}

func TestParseStringStopsAtStructuralCharacter(t *testing.T) {
	p := New(`]rest`)
	v := p.parseString()
	s, ok := v.Str()
	require.True(t, ok)
	assert.Equal(t, "", s)
	assert.Equal(t, `]rest`, p.sc.Remaining())
}

func TestParseStringBareLiteralShortcut(t *testing.T) {
	p := New(`true, "b": 2`)
	p.ctx.Push(ctxstack.ObjectValue)
	v := p.parseString()
	b, ok := v.Bool()
	require.True(t, ok)
	assert.True(t, b)
}
