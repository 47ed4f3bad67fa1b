package sum

// EvalConfig holds configuration for evaluation and normalization.
type EvalConfig struct {
	// FoldConstants enables merging adjacent numeric literals after
	// canonicalization. Off by default so canonical chains keep every
	// literal in traversal order.
	FoldConstants bool
	// MaxDepth rejects expressions nested deeper than this as Unknown.
	// Zero means no limit.
	MaxDepth int
}

// DefaultConfig returns the default evaluation configuration.
func DefaultConfig() EvalConfig {
	return EvalConfig{
		FoldConstants: false,
		MaxDepth:      0,
	}
}

// Evaluator evaluates expressions to values.
type Evaluator struct {
	config EvalConfig
}

// NewEvaluator creates a new evaluator with the given configuration.
func NewEvaluator(config EvalConfig) *Evaluator {
	return &Evaluator{config: config}
}

// EvalExpr evaluates an expression in the given environment. It is total:
// literals denote themselves (opaque symbols resolve through env when bound),
// and a sum denotes the addition of what its children denote. When a symbolic
// value survives, the result is a descriptive symbolic value; callers must
// not treat symbolic results as canonical.
func (ev *Evaluator) EvalExpr(expr Expr, env *Env) Value {
	switch e := expr.(type) {
	case LiteralExpr:
		if s, ok := e.Val.(SymValue); ok {
			if val := env.Get(s.Name); val != nil {
				return val
			}
		}
		return e.Val

	case SumExpr:
		left := ev.EvalExpr(e.Left, env)
		right := ev.EvalExpr(e.Right, env)
		return addValues(left, right)

	default:
		return SymValue{Name: "unknown"}
	}
}

// addValues adds two values. Integer addition is machine addition; when a
// symbolic value is involved the result is a symbolic join, except that a
// zero operand yields the other side unchanged (zero is the chain anchor and
// must stay an identity).
func addValues(left, right Value) Value {
	if l, ok := left.(IntValue); ok {
		if r, ok := right.(IntValue); ok {
			return IntValue{Val: l.Val + r.Val}
		}
		if l.Val == 0 {
			return right
		}
	}
	if r, ok := right.(IntValue); ok && r.Val == 0 {
		return left
	}
	return SymValue{Name: left.String() + "+" + right.String()}
}

// Concrete reports whether every leaf of e resolves to an integer under env.
func (ev *Evaluator) Concrete(expr Expr, env *Env) bool {
	switch e := expr.(type) {
	case LiteralExpr:
		switch v := e.Val.(type) {
		case IntValue:
			return true
		case SymValue:
			if val := env.Get(v.Name); val != nil {
				_, ok := val.(IntValue)
				return ok
			}
			return false
		}
		return false

	case SumExpr:
		return ev.Concrete(e.Left, env) && ev.Concrete(e.Right, env)

	default:
		return false
	}
}
