package sum

// Checker is the main entry point for the canonicalization core. It bundles
// a verifier, normalizer and evaluator behind a high-level API.
type Checker struct {
	verifier   *Verifier
	normalizer *Normalizer
	evaluator  *Evaluator
	config     EvalConfig
}

// New creates a new Checker with default configuration.
func New() *Checker {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a new Checker with the given configuration.
func NewWithConfig(config EvalConfig) *Checker {
	return &Checker{
		verifier:   NewVerifier(config),
		normalizer: NewNormalizer(config),
		evaluator:  NewEvaluator(config),
		config:     config,
	}
}

// Verify checks whether two expressions denote the same value.
func (c *Checker) Verify(lhs, rhs Expr) VerificationReport {
	return c.verifier.CheckEquivalence(lhs, rhs)
}

// VerifyWithEnv checks equivalence under the given symbol bindings.
func (c *Checker) VerifyWithEnv(lhs, rhs Expr, env *Env) VerificationReport {
	return c.verifier.CheckEquivalenceWithEnv(lhs, rhs, env)
}

// Normalize flattens e onto the accumulator acc.
func (c *Checker) Normalize(acc, e Expr) Expr {
	return c.normalizer.Normalize(acc, e)
}

// Canonicalize rewrites e into its canonical right-anchored chain.
func (c *Checker) Canonicalize(e Expr) Expr {
	return c.normalizer.Canonicalize(e)
}

// Fold merges adjacent numeric literals of a canonical chain.
func (c *Checker) Fold(e Expr) Expr {
	return c.normalizer.Fold(e)
}

// Eval evaluates an expression under the given environment.
func (c *Checker) Eval(e Expr, env *Env) Value {
	return c.evaluator.EvalExpr(e, env)
}
