package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, e Expr) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(e))
}

func toJSON(e Expr) interface{} {
	switch n := e.(type) {
	case *Literal:
		m := map[string]interface{}{
			"type": "Literal",
			"kind": n.Kind.String(),
		}
		switch n.Kind {
		case BoolLit:
			m["value"] = n.Bool
		case NumberLit:
			m["value"] = n.Number
		case StringLit:
			m["value"] = n.Text
		case NilLit:
			m["value"] = nil
		}
		return m

	case *Unary:
		return map[string]interface{}{
			"type": "Unary",
			"op":   n.Op.Kind().Lexeme(),
			"x":    toJSON(n.X),
		}

	case *Binary:
		return map[string]interface{}{
			"type": "Binary",
			"op":   n.Op.Kind().Lexeme(),
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	case *Grouping:
		return map[string]interface{}{
			"type": "Grouping",
			"x":    toJSON(n.X),
		}
	}
	return nil
}
