package syntax

import "unicode"

// eof is the sentinel rune returned by source when input is exhausted.
const eof = -1

// source is a character reader over an in-memory buffer with line tracking.
// The whole input is decoded into runes up front so that lookahead is a
// plain index.
type source struct {
	buf  []rune // decoded source text
	offs int    // index of the next unread rune
	line int    // current 1-based line number
}

// newSource creates a source positioned before the first character of src.
func newSource(src string) *source {
	return &source{
		buf:  []rune(src),
		line: 1,
	}
}

// next consumes and returns the next rune, or eof.
// It does not touch the line counter; callers decide when a newline counts.
func (s *source) next() rune {
	if s.offs >= len(s.buf) {
		return eof
	}
	r := s.buf[s.offs]
	s.offs++
	return r
}

// peek returns the next rune without consuming it, or eof.
func (s *source) peek() rune {
	return s.peekAt(0)
}

// peekAt returns the rune n positions past the next one without consuming
// anything, or eof if that runs past the end of input.
func (s *source) peekAt(n int) rune {
	i := s.offs + n
	if i >= len(s.buf) {
		return eof
	}
	return s.buf[i]
}

// match consumes the next rune if it equals r.
func (s *source) match(r rune) bool {
	if s.peek() != r {
		return false
	}
	s.offs++
	return true
}

// atEOF reports whether all input has been consumed.
func (s *source) atEOF() bool {
	return s.offs >= len(s.buf)
}

// text returns the runes in [start, end) as a string.
func (s *source) text(start, end int) string {
	return string(s.buf[start:end])
}

// Character classification helpers

// isDigit reports whether r is an ASCII decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isWordStart reports whether r can begin an identifier or keyword.
func isWordStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// isWordPart reports whether r can continue an identifier or keyword.
func isWordPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// isWhitespace reports whether r is skipped between tokens.
// Newline is handled separately because it advances the line counter.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}
