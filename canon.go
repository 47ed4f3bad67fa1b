// Package canon checks claims about integer addition by rewriting both
// sides of a claim into a canonical, right-anchored chain of sums.
//
// The package is a thin facade over the parsing and canonicalization
// internals; most callers only need ParseExpr, Canonicalize and CheckClaim.
package canon

import (
	"github.com/gnoverse/canon/internal/sum"
	"github.com/gnoverse/canon/parse"
)

// Re-exported core types, so callers do not need to import internal packages.
type (
	// Expr is a parsed addition expression.
	Expr = sum.Expr

	// Env binds symbol names to values during evaluation.
	Env = sum.Env

	// VerificationReport carries the outcome of a claim check.
	VerificationReport = sum.VerificationReport

	// VerificationResult is the three-valued outcome of a claim check.
	VerificationResult = sum.VerificationResult
)

// Possible claim check outcomes.
const (
	Equivalent    = sum.Equivalent
	NotEquivalent = sum.NotEquivalent
	Unknown       = sum.Unknown
)

// NewEnv creates an empty symbol environment.
func NewEnv() *Env {
	return sum.NewEnv()
}

// ParseExpr parses a single addition expression such as "a + (b + 1)".
func ParseExpr(input string) (Expr, error) {
	return parse.Expr(input)
}

// ParseClaim parses a claim of the form "lhs = rhs" into its two sides.
func ParseClaim(input string) (lhs, rhs Expr, err error) {
	return parse.Claim(input)
}

// Canonicalize rewrites e into its canonical right-anchored chain.
func Canonicalize(e Expr) Expr {
	return sum.New().Canonicalize(e)
}

// Normalize flattens e onto the accumulator acc, preserving the relative
// order of all leaves.
func Normalize(acc, e Expr) Expr {
	return sum.New().Normalize(acc, e)
}

// Eval evaluates e under env. Unbound symbols stay symbolic.
func Eval(e Expr, env *Env) sum.Value {
	return sum.New().Eval(e, env)
}

// CheckClaim parses and checks a claim of the form "lhs = rhs".
func CheckClaim(input string) (VerificationReport, error) {
	lhs, rhs, err := parse.Claim(input)
	if err != nil {
		return VerificationReport{}, err
	}
	return sum.New().Verify(lhs, rhs), nil
}

// CheckClaimWithEnv parses and checks a claim under the given bindings.
func CheckClaimWithEnv(input string, env *Env) (VerificationReport, error) {
	lhs, rhs, err := parse.Claim(input)
	if err != nil {
		return VerificationReport{}, err
	}
	return sum.New().VerifyWithEnv(lhs, rhs, env), nil
}
