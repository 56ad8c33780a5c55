package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Sprint returns the canonical parenthesized form of e:
//
//	(- 1)               unary
//	(+ 1 2)             binary
//	(group (+ 1 2))     grouping
//
// A nil expression prints as the empty string.
func Sprint(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

// Fprint writes the canonical form of e to w.
func Fprint(w io.Writer, e Expr) error {
	_, err := io.WriteString(w, Sprint(e))
	return err
}

func writeExpr(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Literal:
		b.WriteString(literalString(n))

	case *Unary:
		b.WriteString("(")
		b.WriteString(n.Op.Kind().Lexeme())
		b.WriteString(" ")
		writeExpr(b, n.X)
		b.WriteString(")")

	case *Binary:
		b.WriteString("(")
		b.WriteString(n.Op.Kind().Lexeme())
		b.WriteString(" ")
		writeExpr(b, n.X)
		b.WriteString(" ")
		writeExpr(b, n.Y)
		b.WriteString(")")

	case *Grouping:
		b.WriteString("(group ")
		writeExpr(b, n.X)
		b.WriteString(")")
	}
}

// literalString renders a literal as its natural value.
func literalString(l *Literal) string {
	switch l.Kind {
	case BoolLit:
		if l.Bool {
			return "true"
		}
		return "false"
	case NumberLit:
		return formatNumber(l.Number)
	case StringLit:
		return `"` + l.Text + `"`
	}
	return "nil"
}

// Dump writes an indented, one-node-per-line listing of e to w. It returns
// the first write error.
func Dump(w io.Writer, e Expr) error {
	p := &printer{w: w}
	p.print(e)
	return p.err
}

type printer struct {
	w      io.Writer
	indent int
	err    error // first write error; later writes are skipped
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(e Expr) {
	switch n := e.(type) {
	case *Literal:
		p.printf("Literal %s %s\n", n.Kind, literalString(n))

	case *Unary:
		p.printf("Unary %s\n", n.Op.Kind().Lexeme())
		p.indent++
		p.print(n.X)
		p.indent--

	case *Binary:
		p.printf("Binary %s\n", n.Op.Kind().Lexeme())
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *Grouping:
		p.printf("Grouping\n")
		p.indent++
		p.print(n.X)
		p.indent--
	}
}
