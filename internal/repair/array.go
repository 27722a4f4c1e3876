package repair

import (
	"github.com/mendjson/jsonrepair/internal/ctxstack"
	"github.com/mendjson/jsonrepair/internal/value"
)

// parseArray implements §4.9: it assumes the opening '[' has already
// been consumed by the dispatcher and loops collecting elements until
// a ']' (well-formed close), a '}' (tolerant close — the author closed
// the wrong bracket), or EOF.
func (p *Parser) parseArray() *value.Value {
	p.ctx.Push(ctxstack.Array)
	defer p.ctx.Pop()

	var elems []*value.Value

	for {
		p.sc.SkipWS()

		if r, ok := p.sc.Peek(0); ok {
			switch r {
			case ']':
				p.sc.GetCh()
				return value.Arr(elems)
			case '}':
				// Tolerant close: wrong bracket type, accept it anyway.
				p.sc.GetCh()
				return value.Arr(elems)
			case ',':
				p.sc.GetCh()
				continue
			}
		} else {
			return value.Arr(elems)
		}

		if p.parseComment() {
			continue
		}

		// A quoted string immediately followed by a colon is really an
		// embedded object missing its outer braces (e.g. the author
		// dropped a "{" before a run of "key": value pairs).
		if v, isObj := p.tryParseKeyColonAsObject(); isObj {
			elems = append(elems, v)
			continue
		}

		out := p.dispatch()
		if out.isStop() {
			// Nothing consumable here but we're not at a recognized
			// closer either (stray character); drop one code point to
			// guarantee forward progress and keep going.
			if _, ok := p.sc.GetCh(); !ok {
				return value.Arr(elems)
			}
			continue
		}

		v := out.val
		if v == nil {
			continue
		}
		if arr, ok := v.Arr(); ok && len(arr) == 0 {
			// An empty nested array contributes nothing; treat it as
			// if this slot simply had no value and move on. Empty
			// objects and empty strings are kept as elements.
			continue
		}
		if s, ok := v.Str(); ok && s == "..." {
			// Truncation marker some LLMs emit mid-array; drop it.
			continue
		}
		elems = append(elems, v)
	}
}

// tryParseKeyColonAsObject looks ahead for QUOTE ... QUOTE COLON from
// the current position; if found, it parses a whole object body in
// place of a single string element (§4.9).
func (p *Parser) tryParseKeyColonAsObject() (*value.Value, bool) {
	r, ok := p.sc.Peek(0)
	if !ok {
		return nil, false
	}
	if _, isQuote := quotePairs[r]; !isQuote {
		return nil, false
	}

	start := p.sc.Save()
	s := p.parseString()
	p.sc.SkipWS()
	if r2, ok2 := p.sc.Peek(0); ok2 && r2 == ':' {
		// It is a key: value pair. Rewind and let the object parser,
		// which expects to own the opening brace decision itself,
		// consume the rest of this synthetic object body.
		p.sc.Restore(start)
		return p.parseObjectBody(), true
	}
	p.sc.Restore(start)
	_ = s
	return nil, false
}
