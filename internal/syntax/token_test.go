package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{LeftParen, "LeftParen"},
		{Slash, "Slash"},
		{BangEqual, "BangEqual"},
		{LessEqual, "LessEqual"},
		{Identifier, "Identifier"},
		{String, "String"},
		{Number, "Number"},
		{And, "And"},
		{While, "While"},
		{EOF, "EOF"},
		{Kind(100), "Kind(100)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestKindLexeme(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{LeftParen, "("},
		{RightBrace, "}"},
		{Minus, "-"},
		{Star, "*"},
		{Bang, "!"},
		{BangEqual, "!="},
		{EqualEqual, "=="},
		{GreaterEqual, ">="},
		{Less, "<"},
		{Class, "class"},
		{Return, "return"},
		{Identifier, "Identifier"},
		{Number, "Number"},
		{EOF, "EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Lexeme())
		})
	}
}

func TestKindNamesComplete(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		assert.NotEmpty(t, kindNames[k], "kind %d has no name", k)
	}
}

func TestKindIsKeyword(t *testing.T) {
	for word, k := range keywords {
		assert.True(t, k.IsKeyword(), "%q", word)
		assert.Equal(t, word, k.Lexeme())
	}
	for _, k := range []Kind{LeftParen, EqualEqual, Identifier, String, Number, EOF} {
		assert.False(t, k.IsKeyword(), "%v", k)
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		word string
		want Kind
	}{
		{"and", And},
		{"class", Class},
		{"else", Else},
		{"false", False},
		{"for", For},
		{"fun", Fun},
		{"if", If},
		{"nil", Nil},
		{"or", Or},
		{"print", Print},
		{"return", Return},
		{"super", Super},
		{"this", This},
		{"true", True},
		{"var", Var},
		{"while", While},

		// Not keywords
		{"foo", Identifier},
		{"_true", Identifier},
		{"classy", Identifier},
		{"And", Identifier},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, LookupKeyword(tt.word))
		})
	}
}

func TestZeroToken(t *testing.T) {
	var tok Token
	assert.Equal(t, invalid, tok.Kind())
	assert.False(t, tok.Is(LeftParen))
	assert.True(t, tok.Value().IsZero())
	assert.Equal(t, "invalid", tok.String())
	assert.NotEqual(t, Bare(LeftParen), tok)
}

func TestBareTokenHasNoValue(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		if k.HasValue() {
			continue
		}
		tok := Bare(k)
		assert.Equal(t, k, tok.Kind())
		assert.True(t, tok.Value().IsZero(), "%v", k)
	}
}

func TestBarePanicsForPayloadKinds(t *testing.T) {
	for _, k := range []Kind{Identifier, String, Number} {
		assert.Panics(t, func() { Bare(k) }, "%v", k)
	}
}

func TestFromTextRejectsOtherKinds(t *testing.T) {
	assert.Panics(t, func() { FromText(Number, "1") })
	assert.Panics(t, func() { FromText(Plus, "+") })
}

func TestPayloadRoundTrip(t *testing.T) {
	s := FromText(String, "hello")
	text, ok := s.Value().Text()
	require.True(t, ok)
	assert.Equal(t, "hello", text)
	_, ok = s.Value().Number()
	assert.False(t, ok)

	id := FromText(Identifier, "abc")
	text, ok = id.Value().Text()
	require.True(t, ok)
	assert.Equal(t, "abc", text)

	n := FromNumber(123.456)
	f, ok := n.Value().Number()
	require.True(t, ok)
	assert.Equal(t, 123.456, f)
	_, ok = n.Value().Text()
	assert.False(t, ok)
}

func TestTokenEquality(t *testing.T) {
	assert.Equal(t, FromNumber(1), FromNumber(1))
	assert.NotEqual(t, FromNumber(1), FromNumber(2))
	assert.True(t, Bare(Plus) == Bare(Plus))
	assert.False(t, FromText(String, "a") == FromText(Identifier, "a"))
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Bare(LeftParen), "LeftParen"},
		{Bare(EqualEqual), "EqualEqual"},
		{Bare(EOF), "EOF"},
		{FromNumber(123), "Number(123)"},
		{FromNumber(123.456), "Number(123.456)"},
		{FromNumber(0.5), "Number(0.5)"},
		{FromText(String, "abc"), `String("abc")`},
		{FromText(String, ""), `String("")`},
		{FromText(Identifier, "x"), `Identifier("x")`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tok.String())
		})
	}
}
