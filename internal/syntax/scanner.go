package syntax

import "strconv"

// Result is one slot of a scan: either a token or the lexical error found
// in its place. Exactly one of Token and Err is meaningful.
type Result struct {
	Token Token
	Err   *LexError
}

// OK reports whether the slot holds a token.
func (r Result) OK() bool {
	return r.Err == nil
}

// Scanner performs lexical analysis over a complete source text.
type Scanner struct {
	*source // embedded character reader

	results []Result
	done    bool
}

// NewScanner creates a Scanner for src.
func NewScanner(src string) *Scanner {
	return &Scanner{source: newSource(src)}
}

// Scan tokenizes src. The result always ends with an EOF token. Errors are
// recorded in place and scanning continues past them.
func Scan(src string) []Result {
	return NewScanner(src).Scan()
}

// Scan runs the scanner to the end of input and returns every slot.
// Later calls return the same slots.
func (s *Scanner) Scan() []Result {
	if s.done {
		return s.results
	}
	s.done = true
	for !s.atEOF() {
		s.scanToken()
	}
	s.emit(Bare(EOF))
	return s.results
}

func (s *Scanner) emit(tok Token) {
	s.results = append(s.results, Result{Token: tok})
}

func (s *Scanner) fail(err *LexError) {
	s.results = append(s.results, Result{Err: err})
}

// scanToken consumes one lexeme and records at most one slot for it.
func (s *Scanner) scanToken() {
	ch := s.next()

	switch ch {
	case '(':
		s.emit(Bare(LeftParen))
	case ')':
		s.emit(Bare(RightParen))
	case '{':
		s.emit(Bare(LeftBrace))
	case '}':
		s.emit(Bare(RightBrace))
	case ',':
		s.emit(Bare(Comma))
	case '.':
		s.emit(Bare(Dot))
	case '-':
		s.emit(Bare(Minus))
	case '+':
		s.emit(Bare(Plus))
	case ';':
		s.emit(Bare(Semicolon))
	case '*':
		s.emit(Bare(Star))

	case '!':
		s.emit(s.operator('=', BangEqual, Bang))
	case '=':
		s.emit(s.operator('=', EqualEqual, Equal))
	case '<':
		s.emit(s.operator('=', LessEqual, Less))
	case '>':
		s.emit(s.operator('=', GreaterEqual, Greater))

	case '/':
		if s.peek() == '/' {
			s.skipLineComment()
			return
		}
		s.emit(Bare(Slash))

	case ' ', '\t', '\r':
		// skip

	case '\n':
		s.line++

	case '"':
		s.scanString()

	default:
		switch {
		case isDigit(ch):
			s.scanNumber()
		case isWordStart(ch):
			s.scanWord()
		default:
			s.fail(&LexError{Kind: UnexpectedChar, Char: ch, Line: s.line})
		}
	}
}

// operator returns the two-character kind if the next rune is second,
// consuming it, and the one-character kind otherwise.
func (s *Scanner) operator(second rune, two, one Kind) Token {
	if s.match(second) {
		return Bare(two)
	}
	return Bare(one)
}

// skipLineComment skips a line comment up to, but not including, the
// newline that ends it.
func (s *Scanner) skipLineComment() {
	for s.peek() != '\n' && s.peek() != eof {
		s.next()
	}
}

// scanString scans a string literal. The opening quote is already consumed.
// Contents are taken verbatim; there are no escape sequences.
func (s *Scanner) scanString() {
	startLine := s.line
	start := s.offs

	for s.peek() != '"' && s.peek() != eof {
		if s.next() == '\n' {
			s.line++
		}
	}

	if s.atEOF() {
		s.fail(&LexError{
			Kind: UnterminatedString,
			Text: s.text(start, s.offs),
			Line: startLine,
		})
		return
	}

	text := s.text(start, s.offs)
	s.next() // closing "
	s.emit(FromText(String, text))
}

// scanNumber scans a number literal. The first digit is already consumed.
// A '.' belongs to the number only when a digit follows it.
func (s *Scanner) scanNumber() {
	start := s.offs - 1
	s.scanDigits()

	if s.peek() == '.' && isDigit(s.peekAt(1)) {
		s.next() // .
		s.scanDigits()
	}

	lit := s.text(start, s.offs)
	// Literals beyond float64 range are rejected rather than read as +Inf.
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		s.fail(&LexError{Kind: InvalidNumber, Text: lit, Line: s.line})
		return
	}
	s.emit(FromNumber(f))
}

// scanDigits consumes a maximal run of decimal digits.
func (s *Scanner) scanDigits() {
	for isDigit(s.peek()) {
		s.next()
	}
}

// scanWord scans an identifier or keyword. The first character is already
// consumed.
func (s *Scanner) scanWord() {
	start := s.offs - 1
	for isWordPart(s.peek()) {
		s.next()
	}

	word := s.text(start, s.offs)
	if k := LookupKeyword(word); k != Identifier {
		s.emit(Bare(k))
		return
	}
	s.emit(FromText(Identifier, word))
}

// Tokens returns the successfully scanned tokens of results, in order.
func Tokens(results []Result) []Token {
	toks := make([]Token, 0, len(results))
	for _, r := range results {
		if r.OK() {
			toks = append(toks, r.Token)
		}
	}
	return toks
}

// Errors returns the lexical errors of results, in order.
func Errors(results []Result) []*LexError {
	var errs []*LexError
	for _, r := range results {
		if !r.OK() {
			errs = append(errs, r.Err)
		}
	}
	return errs
}

// FirstError returns the first lexical error in results, or nil.
func FirstError(results []Result) error {
	for _, r := range results {
		if !r.OK() {
			return r.Err
		}
	}
	return nil
}
