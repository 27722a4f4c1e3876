// Package scanner implements the position-tracked cursor the repair
// parser scans over. It mirrors the teacher's internal/fastparser
// approach of walking a byte cursor directly rather than building a
// separate token stream, generalized to step by Unicode code point
// (fastparser only ever needed ASCII structural bytes).
package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scanner is a byte-offset cursor over an immutable input string. pos
// always lies on a code-point boundary.
type Scanner struct {
	input string
	pos   int
}

// New returns a Scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{input: input}
}

// Input returns the full input text.
func (s *Scanner) Input() string { return s.input }

// Pos returns the current byte offset.
func (s *Scanner) Pos() int { return s.pos }

// Save returns the current position, for later Restore.
func (s *Scanner) Save() int { return s.pos }

// Restore sets the position back to a value previously returned by Save.
func (s *Scanner) Restore(pos int) { s.pos = pos }

// EOS reports whether the cursor is at end of input.
func (s *Scanner) EOS() bool { return s.pos >= len(s.input) }

// Peek returns the code point k positions ahead of pos (k=0 is the
// current character) without advancing the cursor. ok is false at EOF.
func (s *Scanner) Peek(k int) (r rune, ok bool) {
	off := s.pos
	for ; k > 0; k-- {
		if off >= len(s.input) {
			return 0, false
		}
		_, size := utf8.DecodeRuneInString(s.input[off:])
		off += size
	}
	if off >= len(s.input) {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(s.input[off:])
	return r, true
}

// PeekByteOffset returns the byte offset of the code point k positions
// ahead of pos, or len(input) if that runs past EOF. Lookahead helpers
// use this to translate a code-point distance into a byte slice.
func (s *Scanner) PeekByteOffset(k int) int {
	off := s.pos
	for ; k > 0; k-- {
		if off >= len(s.input) {
			return len(s.input)
		}
		_, size := utf8.DecodeRuneInString(s.input[off:])
		off += size
	}
	return off
}

// GetCh consumes and returns one code point, or ok=false at EOF.
func (s *Scanner) GetCh() (r rune, ok bool) {
	if s.pos >= len(s.input) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.input[s.pos:])
	s.pos += size
	return r, true
}

// SkipWS consumes the maximal run of Unicode whitespace starting at pos.
func (s *Scanner) SkipWS() {
	for s.pos < len(s.input) {
		r, size := utf8.DecodeRuneInString(s.input[s.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		s.pos += size
	}
}

// ScanLiteral consumes lit (byte for byte) if the input at pos starts
// with it, returning true on match. Non-destructive on failure.
func (s *Scanner) ScanLiteral(lit string) bool {
	if strings.HasPrefix(s.input[s.pos:], lit) {
		s.pos += len(lit)
		return true
	}
	return false
}

// ScanFold consumes lit case-insensitively if the input at pos starts
// with it (ASCII fold, sufficient for the true/false/null literals).
// Non-destructive on failure.
func (s *Scanner) ScanFold(lit string) bool {
	rest := s.input[s.pos:]
	if len(rest) < len(lit) {
		return false
	}
	if !strings.EqualFold(rest[:len(lit)], lit) {
		return false
	}
	s.pos += len(lit)
	return true
}

// Remaining returns the unconsumed suffix of the input.
func (s *Scanner) Remaining() string {
	return s.input[s.pos:]
}

// AdvanceBytes moves pos forward by n bytes directly; callers must only
// pass byte counts that land on a code-point boundary (e.g. offsets
// derived from strings.Index against Remaining()).
func (s *Scanner) AdvanceBytes(n int) {
	s.pos += n
	if s.pos > len(s.input) {
		s.pos = len(s.input)
	}
}

// AdvanceCodePoints consumes n code points, stopping early at EOF.
func (s *Scanner) AdvanceCodePoints(n int) {
	for i := 0; i < n; i++ {
		if _, ok := s.GetCh(); !ok {
			return
		}
	}
}

// JumpToEnd moves pos to end of input.
func (s *Scanner) JumpToEnd() {
	s.pos = len(s.input)
}
