package repair

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/mendjson/jsonrepair/internal/ctxstack"
	"github.com/mendjson/jsonrepair/internal/scanner"
	"github.com/mendjson/jsonrepair/internal/value"
)

// quotePairs maps an opening quote rune to its matching closer,
// covering the straight quotes plus the curly variants LLMs and word
// processors substitute in (§4.12).
var quotePairs = map[rune]rune{
	'"':      '"',
	'\'':     '\'',
	'“': '”',
	'”': '”',
}

// parseString implements §4.12: the lenient string parser. It never
// fails — worst case it returns an empty string — so it has no bool
// result, unlike the other leaf parsers.
func (p *Parser) parseString() *value.Value {
	// Leading garbage: skip characters that can't begin a string and
	// aren't a bare literal starter, mirroring the teacher's tolerant
	// skip-to-content style. A structural character found first means
	// there's no string here at all: stop without consuming it and
	// report empty (§4.12), leaving it for the enclosing parser to see.
	for {
		r, ok := p.sc.Peek(0)
		if !ok {
			return value.Str("")
		}
		if isStructuralCharacter(r) {
			return value.Str("")
		}
		if _, isQuote := quotePairs[r]; isQuote {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			break
		}
		p.sc.GetCh()
	}

	// Bare literal shortcut: an unquoted true/false/null outside key
	// position is just that literal, not a string of its name.
	if top, has := p.ctx.Top(); !has || top != ctxstack.ObjectKey {
		if lit, ok := p.parseLiteral(); ok {
			return lit
		}
	}

	opener, hasOpener := p.sc.Peek(0)
	quoted := false
	var closer rune
	if c, ok := quotePairs[opener]; ok {
		p.sc.GetCh()
		quoted = true
		closer = c
		hasOpener = true

		// A lone quote character with nothing after it at all isn't a
		// delimiter with missing content — it's a single quote character
		// as the entire string (§9's resolved open question).
		if _, more := p.sc.Peek(0); !more {
			return value.Str(string(opener))
		}

		// Doubled opening quote: "" at the very start of a string is
		// read as a doubled delimiter, not an empty string immediately
		// closed (§4.12 doubled-quote handling): the extra quote is
		// skipped and not kept in the content — but only when more
		// content plausibly follows.
		for {
			r, ok2 := p.sc.Peek(0)
			if ok2 && r == opener {
				if nxt, ok3 := p.sc.Peek(1); ok3 && nxt != closer && !isStructuralTerminator(nxt) {
					p.sc.GetCh()
					continue
				}
			}
			break
		}
	}
	_ = hasOpener

	missingQuotes := !quoted

	var sb strings.Builder
	for {
		r, ok := p.sc.Peek(0)
		if !ok {
			break
		}

		if quoted && r == closer {
			if p.looksLikeRealCloser(closer) {
				p.sc.GetCh()
				return finishString(sb.String(), missingQuotes)
			}
			// Internal quote: keep it, escaped, and continue.
			sb.WriteRune(r)
			p.sc.GetCh()
			continue
		}

		if missingQuotes && p.atMissingQuotesTerminator(r) {
			break
		}

		if r == '\\' {
			p.sc.GetCh()
			esc, consumed := p.parseEscape()
			if consumed {
				sb.WriteString(esc)
				continue
			}
			sb.WriteByte('\\')
			continue
		}

		sb.WriteRune(r)
		p.sc.GetCh()
	}

	return finishString(sb.String(), missingQuotes)
}

// isStructuralCharacter reports whether r is one of the six JSON
// structural characters that can never be leading garbage in front of
// a string: encountering one means there's no string here at all.
func isStructuralCharacter(r rune) bool {
	switch r {
	case '{', '}', '[', ']', ':', ',':
		return true
	default:
		return false
	}
}

// isStructuralTerminator reports whether r is one of the characters
// that can never start meaningful string content right after a
// doubled quote, i.e. it confirms the first quote really was a closer.
func isStructuralTerminator(r rune) bool {
	switch r {
	case ',', ']', '}', ':':
		return true
	default:
		return unicode.IsSpace(r)
	}
}

// looksLikeRealCloser implements the simplified single-lookahead
// plausibility check (§4.12): a candidate closing quote is accepted as
// real if what follows it (skipping whitespace) is a structural
// character, EOF, or another quote of the same kind — the last case
// covers two juxtaposed quoted tokens with nothing but whitespace
// between them, whether that's ["a" "b"] in an array or a bare
// "key" "value" pair with a dropped colon.
func (p *Parser) looksLikeRealCloser(closer rune) bool {
	dist := scanner.SkipWhitespacesAt(p.sc, 1)
	next, ok := scanner.CharAt(p.sc, dist)
	if !ok {
		return true
	}
	if next == closer {
		return true
	}
	switch next {
	case ',', ']', '}', ':':
		return true
	}
	return false
}

// atMissingQuotesTerminator decides where an unquoted string ends,
// using the context stack to pick the right terminator set (§4.12).
func (p *Parser) atMissingQuotesTerminator(r rune) bool {
	top, has := p.ctx.Top()
	if !has {
		return false
	}
	switch top {
	case ctxstack.ObjectKey:
		return r == ':' || r == ']' || r == '}' || unicode.IsSpace(r)
	case ctxstack.Array:
		return r == ']' || r == ','
	case ctxstack.ObjectValue:
		return r == ',' || r == '}'
	default:
		return false
	}
}

// parseEscape consumes the character(s) after a backslash already
// consumed by the caller and returns the decoded replacement text.
// consumed is false when the escape sequence is malformed (e.g. \xZZ)
// in which case the caller restores the literal backslash itself and
// this function has consumed nothing further.
func (p *Parser) parseEscape() (string, bool) {
	r, ok := p.sc.Peek(0)
	if !ok {
		return "", false
	}
	switch r {
	case '"', '\'', '\\', '/':
		p.sc.GetCh()
		return string(r), true
	case 'b':
		p.sc.GetCh()
		return "\b", true
	case 'f':
		p.sc.GetCh()
		return "\f", true
	case 'n':
		p.sc.GetCh()
		return "\n", true
	case 'r':
		p.sc.GetCh()
		return "\r", true
	case 't':
		p.sc.GetCh()
		return "\t", true
	case 'u':
		if s, ok := p.parseHexEscape(1, 4); ok {
			return s, true
		}
		return "", false
	case 'x':
		if s, ok := p.parseHexEscape(1, 2); ok {
			return s, true
		}
		return "", false
	default:
		// Unknown escape: keep the character verbatim, matching the
		// teacher's conservative "don't invent meaning" style.
		p.sc.GetCh()
		return string(r), true
	}
}

// parseHexEscape reads the marker byte (u or x) plus n hex digits
// starting at offset 1 and decodes them as a rune. On any malformed
// digit it consumes nothing and reports ok=false, per scenario 12's
// "\xZZ" -> literal backslash-x-Z-Z behavior.
func (p *Parser) parseHexEscape(markerLen, n int) (string, bool) {
	digits := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		r, ok := p.sc.Peek(markerLen + i)
		if !ok || !isHexDigit(r) {
			return "", false
		}
		digits = append(digits, r)
	}
	code, err := strconv.ParseInt(string(digits), 16, 32)
	if err != nil {
		return "", false
	}
	p.sc.AdvanceCodePoints(markerLen + n)
	return string(rune(code)), true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// finishString applies the trim policy: missing-quotes strings are
// right-trimmed of trailing whitespace, since there's no closing quote
// to mark the intended end of content.
func finishString(s string, missingQuotes bool) *value.Value {
	if missingQuotes {
		s = strings.TrimRight(s, " \t\r\n")
	}
	return value.Str(s)
}
