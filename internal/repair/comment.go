package repair

import (
	"strings"

	"github.com/mendjson/jsonrepair/internal/ctxstack"
	"github.com/mendjson/jsonrepair/internal/scanner"
)

// parseComment consumes a block or line comment starting at the
// scanner's current position and reports true: comments never
// contribute a value, they are pure whitespace as far as the tree is
// concerned (§4.6). ok is false if the cursor wasn't actually sitting
// on a comment opener, in which case nothing is consumed.
func (p *Parser) parseComment() (ok bool) {
	if p.sc.ScanLiteral("/*") {
		p.skipBlockComment()
		p.sc.SkipWS()
		return true
	}
	if p.sc.ScanLiteral("//") || p.sc.ScanLiteral("#") {
		p.skipLineComment()
		p.sc.SkipWS()
		return true
	}
	// A stray slash with no matching comment opener: treat the slash
	// itself as noise and drop it, per §4.6's stray-delimiter handling.
	if r, pk := p.sc.Peek(0); pk && r == '/' {
		p.sc.GetCh()
		p.sc.SkipWS()
		return true
	}
	return false
}

func (p *Parser) skipBlockComment() {
	rest := p.sc.Remaining()
	if idx := strings.Index(rest, "*/"); idx >= 0 {
		p.sc.AdvanceBytes(idx + len("*/"))
		return
	}
	p.sc.JumpToEnd()
}

// skipLineComment scans to a newline (or carriage return), or to a
// structural terminator belonging to any enclosing context when the
// comment is embedded inside an array or object and the author never
// typed a newline at all (common in hand-edited single-line configs).
// Every frame on the stack contributes its own terminator, since a
// comment can sit inside more than one enclosing structure at once.
func (p *Parser) skipLineComment() {
	terminators := "\n\r"
	if p.ctx.Contains(ctxstack.Array) {
		terminators += "]"
	}
	if p.ctx.Contains(ctxstack.ObjectValue) {
		terminators += "}"
	}
	if p.ctx.Contains(ctxstack.ObjectKey) {
		terminators += ":"
	}
	dist := scanner.SkipToCharacter(p.sc, terminators, 0)
	p.sc.AdvanceCodePoints(dist)
}
