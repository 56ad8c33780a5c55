// Package syntax implements lexical and syntactic analysis for the Lox
// expression language.
package syntax

import (
	"fmt"
	"strconv"
)

// Kind represents the lexical category of a token.
type Kind uint

const (
	// The zero Kind marks the zero Token and is never scanned.
	invalid Kind = iota

	// Single-character punctuation
	LeftParen  // (
	RightParen // )
	LeftBrace  // {
	RightBrace // }
	Comma      // ,
	Dot        // .
	Minus      // -
	Plus       // +
	Semicolon  // ;
	Star       // *
	Slash      // /

	// One or two character operators
	Bang         // !
	BangEqual    // !=
	Equal        // =
	EqualEqual   // ==
	Greater      // >
	GreaterEqual // >=
	Less         // <
	LessEqual    // <=

	// Literals
	Identifier
	String
	Number

	// Keywords
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	// End of input
	EOF

	kindCount
)

// kindNames maps kinds to their display names.
var kindNames = [...]string{
	invalid: "invalid",

	LeftParen:  "LeftParen",
	RightParen: "RightParen",
	LeftBrace:  "LeftBrace",
	RightBrace: "RightBrace",
	Comma:      "Comma",
	Dot:        "Dot",
	Minus:      "Minus",
	Plus:       "Plus",
	Semicolon:  "Semicolon",
	Star:       "Star",
	Slash:      "Slash",

	Bang:         "Bang",
	BangEqual:    "BangEqual",
	Equal:        "Equal",
	EqualEqual:   "EqualEqual",
	Greater:      "Greater",
	GreaterEqual: "GreaterEqual",
	Less:         "Less",
	LessEqual:    "LessEqual",

	Identifier: "Identifier",
	String:     "String",
	Number:     "Number",

	And:    "And",
	Class:  "Class",
	Else:   "Else",
	False:  "False",
	Fun:    "Fun",
	For:    "For",
	If:     "If",
	Nil:    "Nil",
	Or:     "Or",
	Print:  "Print",
	Return: "Return",
	Super:  "Super",
	This:   "This",
	True:   "True",
	Var:    "Var",
	While:  "While",

	EOF: "EOF",
}

// kindLexemes maps kinds to their source spelling. Literal kinds and EOF
// have no fixed spelling and are left empty.
var kindLexemes = [...]string{
	LeftParen:  "(",
	RightParen: ")",
	LeftBrace:  "{",
	RightBrace: "}",
	Comma:      ",",
	Dot:        ".",
	Minus:      "-",
	Plus:       "+",
	Semicolon:  ";",
	Star:       "*",
	Slash:      "/",

	Bang:         "!",
	BangEqual:    "!=",
	Equal:        "=",
	EqualEqual:   "==",
	Greater:      ">",
	GreaterEqual: ">=",
	Less:         "<",
	LessEqual:    "<=",

	And:    "and",
	Class:  "class",
	Else:   "else",
	False:  "false",
	Fun:    "fun",
	For:    "for",
	If:     "if",
	Nil:    "nil",
	Or:     "or",
	Print:  "print",
	Return: "return",
	Super:  "super",
	This:   "this",
	True:   "true",
	Var:    "var",
	While:  "while",

	kindCount: "",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Lexeme returns the source spelling of the kind, e.g. "==" for EqualEqual.
// Kinds without a fixed spelling return their name.
func (k Kind) Lexeme() string {
	if k < kindCount && kindLexemes[k] != "" {
		return kindLexemes[k]
	}
	return k.String()
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= And && k <= While
}

// HasValue reports whether tokens of kind k carry a literal payload.
func (k Kind) HasValue() bool {
	return k == Identifier || k == String || k == Number
}

// keywords maps reserved words to their kind.
var keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// LookupKeyword returns the keyword kind for word, or Identifier if word is
// not reserved.
func LookupKeyword(word string) Kind {
	if k, ok := keywords[word]; ok {
		return k
	}
	return Identifier
}

// valueKind discriminates the payload held by a Value.
type valueKind uint8

const (
	noValue valueKind = iota
	textValue
	numberValue
)

// Value is the decoded literal payload of a token. The zero Value is absent.
type Value struct {
	kind valueKind
	text string
	num  float64
}

// TextValue returns a Value holding s.
func TextValue(s string) Value {
	return Value{kind: textValue, text: s}
}

// NumberValue returns a Value holding f.
func NumberValue(f float64) Value {
	return Value{kind: numberValue, num: f}
}

// IsZero reports whether the value is absent.
func (v Value) IsZero() bool {
	return v.kind == noValue
}

// Text returns the text payload and whether v holds one.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == textValue
}

// Number returns the numeric payload and whether v holds one.
func (v Value) Number() (float64, bool) {
	return v.num, v.kind == numberValue
}

// String renders text in double quotes and numbers in their shortest
// decimal form.
func (v Value) String() string {
	switch v.kind {
	case textValue:
		return `"` + v.text + `"`
	case numberValue:
		return formatNumber(v.num)
	}
	return ""
}

// formatNumber renders f without exponent and without trailing zeros,
// so 1.0 prints as "1" and 45.67 as "45.67".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Token is a single lexical unit. Tokens are immutable values and compare
// with ==.
type Token struct {
	kind  Kind
	value Value
}

// Bare returns a token of kind k with no payload. It panics if k requires a
// payload; use FromText or FromNumber for those.
func Bare(k Kind) Token {
	if k.HasValue() {
		panic(fmt.Sprintf("syntax: Bare(%v) requires a payload", k))
	}
	return Token{kind: k}
}

// FromText returns a String or Identifier token carrying s.
func FromText(k Kind, s string) Token {
	if k != String && k != Identifier {
		panic(fmt.Sprintf("syntax: FromText(%v) takes String or Identifier", k))
	}
	return Token{kind: k, value: TextValue(s)}
}

// FromNumber returns a Number token carrying f.
func FromNumber(f float64) Token {
	return Token{kind: Number, value: NumberValue(f)}
}

// Kind returns the token's kind.
func (t Token) Kind() Kind {
	return t.kind
}

// Value returns the token's payload. It is absent for bare tokens.
func (t Token) Value() Value {
	return t.value
}

// Is reports whether the token has kind k.
func (t Token) Is(k Kind) bool {
	return t.kind == k
}

// String renders the token as Kind or Kind(value), e.g. Number(123).
func (t Token) String() string {
	if t.value.IsZero() {
		return t.kind.String()
	}
	return t.kind.String() + "(" + t.value.String() + ")"
}
