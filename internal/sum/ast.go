package sum

// Expr represents an addition expression.
type Expr interface {
	isExpr()
	String() string
}

// LiteralExpr represents a leaf carrying a value. The value may be a numeric
// constant or an opaque symbol; the normalizer never inspects it.
type LiteralExpr struct {
	Val Value
}

func (LiteralExpr) isExpr() {}
func (e LiteralExpr) String() string {
	return e.Val.String()
}

// SumExpr represents the sum of two sub-expressions.
type SumExpr struct {
	Left  Expr
	Right Expr
}

func (SumExpr) isExpr() {}
func (e SumExpr) String() string {
	return "(" + e.Left.String() + " + " + e.Right.String() + ")"
}

// Helper functions to construct AST nodes

// Lit creates a literal expression from a value.
func Lit(v Value) Expr {
	return LiteralExpr{Val: v}
}

// IntLit creates an integer literal expression.
func IntLit(v int64) Expr {
	return LiteralExpr{Val: IntValue{Val: v}}
}

// Sym creates an opaque symbol literal expression.
func Sym(name string) Expr {
	return LiteralExpr{Val: SymValue{Name: name}}
}

// Zero creates the zero literal used to anchor canonical chains.
func Zero() Expr {
	return IntLit(0)
}

// Add creates a sum of two expressions.
func Add(left, right Expr) Expr {
	return SumExpr{Left: left, Right: right}
}

// Chain builds a left-nested chain anchored at acc:
// Chain(x, a, b, c) = ((x + a) + b) + c.
func Chain(acc Expr, terms ...Expr) Expr {
	result := acc
	for _, t := range terms {
		result = SumExpr{Left: result, Right: t}
	}
	return result
}

// ExprEqual reports structural identity of two expressions.
func ExprEqual(a, b Expr) bool {
	switch left := a.(type) {
	case LiteralExpr:
		right, ok := b.(LiteralExpr)
		if !ok {
			return false
		}
		return left.Val.Equal(right.Val)
	case SumExpr:
		right, ok := b.(SumExpr)
		if !ok {
			return false
		}
		return ExprEqual(left.Left, right.Left) && ExprEqual(left.Right, right.Right)
	default:
		return false
	}
}

// Literals returns the values of e's leaves in left-to-right traversal order.
func Literals(e Expr) []Value {
	var result []Value
	collectLiterals(e, &result)
	return result
}

func collectLiterals(e Expr, result *[]Value) {
	switch t := e.(type) {
	case LiteralExpr:
		*result = append(*result, t.Val)
	case SumExpr:
		collectLiterals(t.Left, result)
		collectLiterals(t.Right, result)
	}
}

// Depth returns the height of the expression tree. Used to guard against
// pathological inputs in the batch checker.
func Depth(e Expr) int {
	if s, ok := e.(SumExpr); ok {
		l := Depth(s.Left)
		r := Depth(s.Right)
		if l > r {
			return l + 1
		}
		return r + 1
	}
	return 1
}
