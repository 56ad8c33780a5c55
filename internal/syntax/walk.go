package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(e Expr) bool

// Walk traverses an expression tree in depth-first pre-order.
// If visitor returns false, children are not visited.
func Walk(e Expr, v Visitor) {
	if e == nil || !v(e) {
		return
	}

	switch n := e.(type) {
	case *Unary:
		Walk(n.X, v)

	case *Binary:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *Grouping:
		Walk(n.X, v)
	}
}

// CountComposite returns the number of non-literal nodes in e.
func CountComposite(e Expr) int {
	n := 0
	Walk(e, func(e Expr) bool {
		if _, ok := e.(*Literal); !ok {
			n++
		}
		return true
	})
	return n
}
