package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SkipToCharacter returns the code-point distance from the scanner's
// current position to the first occurrence of a rune in target at or
// after pos+startOffset, treating an occurrence preceded by an odd
// number of backslashes as escaped and skipping past it. If no
// unescaped occurrence exists, it returns the distance to EOF. Like all
// lookahead helpers this never mutates the scanner's position.
func SkipToCharacter(s *Scanner, target string, startOffset int) int {
	input := s.Input()
	bytePos := s.PeekByteOffset(startOffset)
	i := startOffset
	for bytePos < len(input) {
		r, size := utf8.DecodeRuneInString(input[bytePos:])
		if strings.ContainsRune(target, r) && !escapedAt(input, bytePos) {
			return i
		}
		bytePos += size
		i++
	}
	return i
}

// SkipWhitespacesAt returns the smallest code-point offset >= startOffset
// (relative to the scanner's current position) pointing at a
// non-whitespace character, or the distance to EOF.
func SkipWhitespacesAt(s *Scanner, startOffset int) int {
	input := s.Input()
	bytePos := s.PeekByteOffset(startOffset)
	i := startOffset
	for bytePos < len(input) {
		r, size := utf8.DecodeRuneInString(input[bytePos:])
		if !unicode.IsSpace(r) {
			return i
		}
		bytePos += size
		i++
	}
	return i
}

// CharAt returns the rune at code-point offset from the scanner's
// current position, or ok=false past EOF. Equivalent to Scanner.Peek,
// exposed here for readability at lookahead call sites.
func CharAt(s *Scanner, offset int) (rune, bool) {
	return s.Peek(offset)
}

// escapedAt reports whether the byte at pos is preceded by an odd
// number of consecutive backslashes.
func escapedAt(input string, pos int) bool {
	n := 0
	for pos-1 >= 0 && input[pos-1] == '\\' {
		n++
		pos--
	}
	return n%2 == 1
}
