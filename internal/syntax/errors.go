package syntax

import (
	"errors"
	"fmt"
)

// LexErrorKind classifies a lexical error.
type LexErrorKind uint8

const (
	UnexpectedChar     LexErrorKind = iota // character that starts no token
	UnterminatedString                     // input ended inside a string literal
	InvalidNumber                          // digits that do not parse as a float64
)

var lexErrorNames = [...]string{
	UnexpectedChar:     "UnexpectedChar",
	UnterminatedString: "UnterminatedString",
	InvalidNumber:      "InvalidNumber",
}

func (k LexErrorKind) String() string {
	if int(k) < len(lexErrorNames) {
		return lexErrorNames[k]
	}
	return fmt.Sprintf("LexErrorKind(%d)", k)
}

// Sentinels for errors.Is. A *LexError matches the sentinel of its kind.
var (
	ErrUnexpectedChar     = errors.New("unexpected character")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrInvalidNumber      = errors.New("invalid number")
)

// LexError is a lexical error. Char is set for UnexpectedChar; Text holds
// the offending source text for the other kinds.
type LexError struct {
	Kind LexErrorKind
	Char rune
	Text string
	Line int // 1-based
}

func (e *LexError) Error() string {
	switch e.Kind {
	case UnexpectedChar:
		return fmt.Sprintf("Line %d: Unexpected character: '%c'", e.Line, e.Char)
	case UnterminatedString:
		return fmt.Sprintf("Line %d: Unterminated string: '%s'", e.Line, e.Text)
	case InvalidNumber:
		return fmt.Sprintf("Line %d: Invalid number: '%s'", e.Line, e.Text)
	}
	return fmt.Sprintf("Line %d: %v", e.Line, e.Kind)
}

// Is reports whether target is the sentinel for e's kind.
func (e *LexError) Is(target error) bool {
	switch e.Kind {
	case UnexpectedChar:
		return target == ErrUnexpectedChar
	case UnterminatedString:
		return target == ErrUnterminatedString
	case InvalidNumber:
		return target == ErrInvalidNumber
	}
	return false
}

// ParseErrorKind classifies a parse error.
type ParseErrorKind uint8

const (
	ExpectedExpression           ParseErrorKind = iota // ran out of tokens
	ExpectedPrimaryExpressionGot                       // token cannot start a primary expression
	UnclosedParenthesis                                // grouping without a closing ')'
)

var parseErrorNames = [...]string{
	ExpectedExpression:           "ExpectedExpression",
	ExpectedPrimaryExpressionGot: "ExpectedPrimaryExpressionGot",
	UnclosedParenthesis:          "UnclosedParenthesis",
}

func (k ParseErrorKind) String() string {
	if int(k) < len(parseErrorNames) {
		return parseErrorNames[k]
	}
	return fmt.Sprintf("ParseErrorKind(%d)", k)
}

// Sentinels for errors.Is. A *ParseError matches the sentinel of its kind.
var (
	ErrExpectedExpression = errors.New("expected expression")
	ErrExpectedPrimary    = errors.New("expected primary expression")
	ErrUnclosedParen      = errors.New("unclosed parenthesis")
)

// ParseError is a syntax error. Token is the offending token for
// ExpectedPrimaryExpressionGot and the zero Token otherwise.
type ParseError struct {
	Kind  ParseErrorKind
	Token Token
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ExpectedExpression:
		return "Expected expression"
	case ExpectedPrimaryExpressionGot:
		return fmt.Sprintf("Expected primary expression got %v", e.Token)
	case UnclosedParenthesis:
		return "Unclosed parenthesis"
	}
	return e.Kind.String()
}

// Is reports whether target is the sentinel for e's kind.
func (e *ParseError) Is(target error) bool {
	switch e.Kind {
	case ExpectedExpression:
		return target == ErrExpectedExpression
	case ExpectedPrimaryExpressionGot:
		return target == ErrExpectedPrimary
	case UnclosedParenthesis:
		return target == ErrUnclosedParen
	}
	return false
}
