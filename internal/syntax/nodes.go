package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// Expressions form a closed set: Literal, Unary, Binary and Grouping. The
// unexported marker method keeps other packages from adding variants, so a
// type switch over these four is exhaustive.

// Expr is the interface implemented by all expression nodes.
type Expr interface {
	aExpr() // marker method to restrict implementations to this package
}

// expr is embedded in all expression nodes.
type expr struct{}

func (*expr) aExpr() {}

// ----------------------------------------------------------------------------
// Literals

// LitKind represents the kind of a literal value.
type LitKind uint8

const (
	BoolLit   LitKind = iota // true, false
	NumberLit                // 123, 1.5
	StringLit                // "hello"
	NilLit                   // nil
)

var litKindNames = [...]string{
	BoolLit:   "bool",
	NumberLit: "number",
	StringLit: "string",
	NilLit:    "nil",
}

// String returns the string representation of the literal kind.
func (k LitKind) String() string {
	if int(k) < len(litKindNames) {
		return litKindNames[k]
	}
	return "invalid"
}

// Literal is a leaf value. Only the field selected by Kind is meaningful.
type Literal struct {
	expr
	Kind   LitKind
	Bool   bool
	Number float64
	Text   string
}

// NewBool returns a boolean literal.
func NewBool(b bool) *Literal {
	return &Literal{Kind: BoolLit, Bool: b}
}

// NewNumber returns a number literal.
func NewNumber(f float64) *Literal {
	return &Literal{Kind: NumberLit, Number: f}
}

// NewString returns a string literal.
func NewString(s string) *Literal {
	return &Literal{Kind: StringLit, Text: s}
}

// NewNil returns the nil literal.
func NewNil() *Literal {
	return &Literal{Kind: NilLit}
}

// ----------------------------------------------------------------------------
// Composite expressions

// Unary represents a prefix operation: Op X, where Op is ! or -.
type Unary struct {
	expr
	Op Token
	X  Expr
}

// NewUnary returns a unary node that owns x.
func NewUnary(op Token, x Expr) *Unary {
	return &Unary{Op: op, X: x}
}

// Binary represents an infix operation: X Op Y.
type Binary struct {
	expr
	X  Expr
	Op Token
	Y  Expr
}

// NewBinary returns a binary node that owns x and y.
func NewBinary(x Expr, op Token, y Expr) *Binary {
	return &Binary{X: x, Op: op, Y: y}
}

// Grouping represents a parenthesized expression: (X).
type Grouping struct {
	expr
	X Expr
}

// NewGrouping returns a grouping node that owns x.
func NewGrouping(x Expr) *Grouping {
	return &Grouping{X: x}
}
