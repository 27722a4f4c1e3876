package repair

import "github.com/mendjson/jsonrepair/internal/value"

// parseLiteral tries, case-insensitively and in order, true/false/null.
// It is non-destructive on failure: the scanner position is unchanged
// unless a literal actually matched.
func (p *Parser) parseLiteral() (*value.Value, bool) {
	if p.sc.ScanFold("true") {
		return value.Bool(true), true
	}
	if p.sc.ScanFold("false") {
		return value.Bool(false), true
	}
	if p.sc.ScanFold("null") {
		return value.Null(), true
	}
	return nil, false
}
