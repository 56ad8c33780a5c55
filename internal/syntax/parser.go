package syntax

// Parser performs syntax analysis over a scanned token sequence.
type Parser struct {
	tokens []Token
	cur    int // index of the next unread token; never moves past EOF
}

// NewParser creates a Parser that owns tokens.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a single expression from tokens.
func Parse(tokens []Token) (Expr, error) {
	return NewParser(tokens).Parse()
}

// ----------------------------------------------------------------------------
// Token navigation

// peek returns the next token without consuming it. It reports false when no
// tokens remain.
func (p *Parser) peek() (Token, bool) {
	if p.cur >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.cur], true
}

// next consumes and returns the next token. The EOF marker is returned but
// not consumed, so the cursor never passes it.
func (p *Parser) next() (Token, bool) {
	tok, ok := p.peek()
	if ok && !tok.Is(EOF) {
		p.cur++
	}
	return tok, ok
}

// got consumes the next token if its kind is one of kinds.
func (p *Parser) got(kinds ...Kind) (Token, bool) {
	tok, ok := p.peek()
	if !ok {
		return Token{}, false
	}
	for _, k := range kinds {
		if tok.Is(k) {
			p.cur++
			return tok, true
		}
	}
	return Token{}, false
}

// Pos returns the index of the next unread token.
func (p *Parser) Pos() int {
	return p.cur
}

// AtEnd reports whether the cursor is at the EOF marker or past the last
// token.
func (p *Parser) AtEnd() bool {
	tok, ok := p.peek()
	return !ok || tok.Is(EOF)
}

// ----------------------------------------------------------------------------
// Error handling

// synchronize discards tokens until just after a ';' or just before a token
// that starts a statement.
func (p *Parser) synchronize() {
	for {
		tok, ok := p.peek()
		if !ok {
			return
		}
		switch tok.Kind() {
		case Semicolon:
			p.cur++
			return
		case Class, Fun, Var, For, If, While, Print, Return, EOF:
			return
		}
		p.cur++
	}
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses one expression. On failure the returned error is a
// *ParseError and the cursor has been moved to the next synchronization
// point.
func (p *Parser) Parse() (Expr, error) {
	x, err := p.expr()
	if err != nil {
		p.synchronize()
		return nil, err
	}
	return x, nil
}

// ----------------------------------------------------------------------------
// Expressions
//
// Precedence, lowest to highest: equality, comparison, term, factor, unary,
// primary. Each binary level is left associative.

// expr parses an expression.
func (p *Parser) expr() (Expr, error) {
	return p.equality()
}

// equality parses == and != chains.
func (p *Parser) equality() (Expr, error) {
	return p.binaryExpr(p.comparison, BangEqual, EqualEqual)
}

// comparison parses > >= < <= chains.
func (p *Parser) comparison() (Expr, error) {
	return p.binaryExpr(p.term, Greater, GreaterEqual, Less, LessEqual)
}

// term parses + and - chains.
func (p *Parser) term() (Expr, error) {
	return p.binaryExpr(p.factor, Minus, Plus)
}

// factor parses * and / chains.
func (p *Parser) factor() (Expr, error) {
	return p.binaryExpr(p.unaryExpr, Slash, Star)
}

// binaryExpr parses operand (op operand)* and folds the chain to the left.
func (p *Parser) binaryExpr(operand func() (Expr, error), ops ...Kind) (Expr, error) {
	x, err := operand()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := p.got(ops...)
		if !ok {
			return x, nil
		}
		y, err := operand()
		if err != nil {
			return nil, err
		}
		x = NewBinary(x, op, y)
	}
}

// unaryExpr parses a prefix ! or - applied to another unary expression.
func (p *Parser) unaryExpr() (Expr, error) {
	if op, ok := p.got(Bang, Minus); ok {
		x, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}
		return NewUnary(op, x), nil
	}
	return p.primary()
}

// primary parses literals and parenthesized expressions.
func (p *Parser) primary() (Expr, error) {
	tok, ok := p.next()
	if !ok || tok.Is(EOF) {
		return nil, &ParseError{Kind: ExpectedExpression}
	}

	switch tok.Kind() {
	case False:
		return NewBool(false), nil
	case True:
		return NewBool(true), nil
	case Nil:
		return NewNil(), nil

	case Number:
		if f, ok := tok.Value().Number(); ok {
			return NewNumber(f), nil
		}
	case String:
		if s, ok := tok.Value().Text(); ok {
			return NewString(s), nil
		}

	case LeftParen:
		return p.grouping()
	}

	return nil, &ParseError{Kind: ExpectedPrimaryExpressionGot, Token: tok}
}

// grouping parses the rest of a parenthesized expression. The '(' is
// already consumed.
func (p *Parser) grouping() (Expr, error) {
	x, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, ok := p.got(RightParen); !ok {
		return nil, &ParseError{Kind: UnclosedParenthesis}
	}
	return NewGrouping(x), nil
}
