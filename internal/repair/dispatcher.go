package repair

import "github.com/mendjson/jsonrepair/internal/ctxstack"

// dispatch implements §4.7's parse_json: it skips whitespace and
// comments, then looks at the next character to decide which
// component owns it, returning the stop token when the character
// belongs to an enclosing structure instead of starting a new value.
func (p *Parser) dispatch() outcome {
	for {
		p.sc.SkipWS()
		if p.parseComment() {
			continue
		}
		break
	}

	r, ok := p.sc.Peek(0)
	if !ok {
		return stopOutcome()
	}

	switch {
	case r == '{':
		p.sc.GetCh()
		return valueOutcome(p.parseObject())
	case r == '[':
		p.sc.GetCh()
		return valueOutcome(p.parseArray())
	case p.isContextTerminator(r):
		return stopOutcome()
	case isNumberStart(r):
		if v, ok := p.parseNumber(); ok {
			return valueOutcome(v)
		}
		return stopOutcome()
	default:
		return valueOutcome(p.parseString())
	}
}

// isContextTerminator reports whether r is a structural character
// that closes or separates the enclosing structure rather than
// starting a new value in the current position. ']' and '}' can never
// begin a value in any context, including the empty top-level stack,
// so they're always treated as stray closers there.
func (p *Parser) isContextTerminator(r rune) bool {
	top, has := p.ctx.Top()
	if !has {
		return r == ']' || r == '}'
	}
	switch top {
	case ctxstack.Array:
		return r == ']' || r == ','
	case ctxstack.ObjectKey:
		return r == ':' || r == '}' || r == ']'
	case ctxstack.ObjectValue:
		return r == ',' || r == '}'
	default:
		return false
	}
}

func isNumberStart(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-' || r == '.'
}
