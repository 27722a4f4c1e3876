// Package repair implements the lenient, context-sensitive
// recursive-descent parser that is the core of this module: it turns
// malformed JSON-like text into a best-effort value.Value tree,
// mirroring the teacher's internal/fastparser byte-cursor design but
// generalized with the heuristics spec'd for recovering missing
// delimiters, stray separators, and other LLM/hand-edit damage.
package repair

import (
	"github.com/mendjson/jsonrepair/internal/ctxstack"
	"github.com/mendjson/jsonrepair/internal/scanner"
	"github.com/mendjson/jsonrepair/internal/value"
)

// Parser bundles the scanner and context stack that every component
// shares. Composite parsers push a frame before recursing and pop it
// after, on every path; leaf parsers only ever read the stack.
type Parser struct {
	sc  *scanner.Scanner
	ctx *ctxstack.Stack
}

// New returns a Parser over input, positioned at the start.
func New(input string) *Parser {
	return &Parser{
		sc:  scanner.New(input),
		ctx: ctxstack.New(),
	}
}

// outcome is the dispatcher's return channel: either a parsed value, or
// the stop token meaning "nothing parsed here; the scanner is at a
// terminator belonging to an outer context, or at EOF". The stop token
// is never stored inside a value.Value.
type outcome struct {
	val  *value.Value
	stop bool
}

func stopOutcome() outcome            { return outcome{stop: true} }
func valueOutcome(v *value.Value) outcome { return outcome{val: v} }

func (o outcome) isStop() bool { return o.stop }

// Repair parses the full input per the top-level driver (§4.11) and
// returns the resulting value, or nil if nothing could be parsed.
func (p *Parser) Repair() *value.Value {
	return p.topLevelDriver()
}
