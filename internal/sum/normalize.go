package sum

// Normalizer rewrites expressions into canonical right-anchored chains.
type Normalizer struct {
	config EvalConfig
}

// NewNormalizer creates a new normalizer.
func NewNormalizer(config EvalConfig) *Normalizer {
	return &Normalizer{config: config}
}

// Normalize flattens e onto the accumulator acc, appending every literal of
// e to the running chain in left-to-right traversal order:
//
//	Normalize(x0, Literal(n))   = Sum(x0, Literal(n))
//	Normalize(x0, Sum(e1, e2))  = Normalize(Normalize(x0, e1), e2)
//
// The result is a chain ((...(acc + l1) + l2) ... + lk) where l1..lk are
// the literals of e in traversal order. Total; never inspects payloads.
func (n *Normalizer) Normalize(acc, e Expr) Expr {
	switch t := e.(type) {
	case LiteralExpr:
		return SumExpr{Left: acc, Right: t}
	case SumExpr:
		return n.Normalize(n.Normalize(acc, t.Left), t.Right)
	default:
		return SumExpr{Left: acc, Right: e}
	}
}

// Canonicalize rewrites e into its canonical form: the chain produced by
// normalizing onto a zero anchor. Two expressions equal up to associativity
// canonicalize to structurally identical chains.
func (n *Normalizer) Canonicalize(e Expr) Expr {
	result := n.Normalize(Zero(), e)
	if n.config.FoldConstants {
		result = n.Fold(result)
	}
	return result
}

// Fold merges adjacent numeric literals bottom-up. It is a separate pass so
// that plain canonicalization preserves every literal and its position.
func (n *Normalizer) Fold(e Expr) Expr {
	s, ok := e.(SumExpr)
	if !ok {
		return e
	}

	left := n.Fold(s.Left)
	right := n.Fold(s.Right)

	if llit, lok := left.(LiteralExpr); lok {
		if rlit, rok := right.(LiteralExpr); rok {
			if l, ok := llit.Val.(IntValue); ok {
				if r, ok := rlit.Val.(IntValue); ok {
					return LiteralExpr{Val: IntValue{Val: l.Val + r.Val}}
				}
			}
		}
	}

	return SumExpr{Left: left, Right: right}
}

// IsCanonical reports whether e is already a right-anchored chain: every
// right child is a literal and the spine runs down the left.
func IsCanonical(e Expr) bool {
	for {
		s, ok := e.(SumExpr)
		if !ok {
			_, isLit := e.(LiteralExpr)
			return isLit
		}
		if _, ok := s.Right.(LiteralExpr); !ok {
			return false
		}
		e = s.Left
	}
}
