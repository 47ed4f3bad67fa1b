package sum

// VerificationResult represents the result of equivalence verification.
type VerificationResult int

const (
	_ VerificationResult = iota
	// Equivalent indicates the two sides are semantically equivalent.
	Equivalent
	// NotEquivalent indicates the two sides are not equivalent.
	NotEquivalent
	// Unknown indicates equivalence cannot be determined.
	Unknown
)

func (r VerificationResult) String() string {
	switch r {
	case Equivalent:
		return "Equivalent"
	case NotEquivalent:
		return "NotEquivalent"
	case Unknown:
		return "Unknown"
	default:
		return "?"
	}
}

// ReasonCode provides a reason for the verification result.
type ReasonCode int

const (
	ReasonNone ReasonCode = iota
	ReasonCanonicalMatch
	ReasonSameValue
	ReasonDifferentValue
	ReasonSymbolicOperand
	ReasonTooDeep
)

func (r ReasonCode) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonCanonicalMatch:
		return "canonical forms are identical"
	case ReasonSameValue:
		return "both sides evaluate to the same value"
	case ReasonDifferentValue:
		return "sides evaluate to different values"
	case ReasonSymbolicOperand:
		return "symbolic operands - not decidable by reassociation"
	case ReasonTooDeep:
		return "expression exceeds configured depth limit"
	default:
		return "unknown"
	}
}

// VerificationReport provides detailed information about verification.
type VerificationReport struct {
	Result VerificationResult
	Reason ReasonCode
	Detail string
	// LHS and RHS hold the canonical chains the decision was made on.
	LHS Expr
	RHS Expr
}

// Verifier decides equality claims between addition expressions.
type Verifier struct {
	normalizer *Normalizer
	evaluator  *Evaluator
	config     EvalConfig
}

// NewVerifier creates a new verifier with the given configuration.
func NewVerifier(config EvalConfig) *Verifier {
	return &Verifier{
		normalizer: NewNormalizer(config),
		evaluator:  NewEvaluator(config),
		config:     config,
	}
}

// CheckEquivalence checks whether lhs and rhs denote the same value for
// every assignment of their opaque symbols.
func (v *Verifier) CheckEquivalence(lhs, rhs Expr) VerificationReport {
	return v.CheckEquivalenceWithEnv(lhs, rhs, NewEnv())
}

// CheckEquivalenceWithEnv checks equivalence under the given symbol bindings.
// Both sides are canonicalized; structurally identical chains are equivalent
// by the soundness of normalization. Otherwise, fully concrete sides are
// compared by evaluation. Anything beyond that is Unknown: reassociation is
// the only law this procedure knows.
func (v *Verifier) CheckEquivalenceWithEnv(lhs, rhs Expr, env *Env) VerificationReport {
	if v.config.MaxDepth > 0 {
		if Depth(lhs) > v.config.MaxDepth || Depth(rhs) > v.config.MaxDepth {
			return VerificationReport{
				Result: Unknown,
				Reason: ReasonTooDeep,
				Detail: "claim skipped: expression nesting exceeds limit",
			}
		}
	}

	cl := v.normalizer.Canonicalize(lhs)
	cr := v.normalizer.Canonicalize(rhs)

	if ExprEqual(cl, cr) {
		return VerificationReport{
			Result: Equivalent,
			Reason: ReasonCanonicalMatch,
			Detail: "both sides reduce to " + cl.String(),
			LHS:    cl,
			RHS:    cr,
		}
	}

	if v.evaluator.Concrete(lhs, env) && v.evaluator.Concrete(rhs, env) {
		lv := v.evaluator.EvalExpr(lhs, env)
		rv := v.evaluator.EvalExpr(rhs, env)
		if lv.Equal(rv) {
			return VerificationReport{
				Result: Equivalent,
				Reason: ReasonSameValue,
				Detail: "both sides evaluate to " + lv.String(),
				LHS:    cl,
				RHS:    cr,
			}
		}
		return VerificationReport{
			Result: NotEquivalent,
			Reason: ReasonDifferentValue,
			Detail: "values differ: " + lv.String() + " vs " + rv.String(),
			LHS:    cl,
			RHS:    cr,
		}
	}

	return VerificationReport{
		Result: Unknown,
		Reason: ReasonSymbolicOperand,
		Detail: "canonical chains differ: " + cl.String() + " vs " + cr.String(),
		LHS:    cl,
		RHS:    cr,
	}
}

// IsSafeToDischarge reports whether a claim is verified as equivalent.
func IsSafeToDischarge(report VerificationReport) bool {
	return report.Result == Equivalent
}

// ShouldWarn reports whether a warning should be emitted for a claim
// whose equivalence could not be verified either way.
func ShouldWarn(report VerificationReport) bool {
	return report.Result == Unknown
}
