package sum

import (
	"fmt"
	"math/rand"
)

// RandomExpr generates a random expression tree with the given maximum
// depth. When symbols is empty every leaf is a small integer constant,
// which keeps the generated expressions fully concrete.
func RandomExpr(r *rand.Rand, depth int, symbols []string) Expr {
	if depth <= 1 || r.Intn(3) == 0 {
		if len(symbols) > 0 && r.Intn(2) == 0 {
			return Sym(symbols[r.Intn(len(symbols))])
		}
		return IntLit(int64(r.Intn(100)))
	}
	return Add(RandomExpr(r, depth-1, symbols), RandomExpr(r, depth-1, symbols))
}

// SelfCheckReport summarizes a randomized soundness run.
type SelfCheckReport struct {
	Trials   int
	Failures []string
}

// OK reports whether every trial passed.
func (r SelfCheckReport) OK() bool {
	return len(r.Failures) == 0
}

// Summary returns a human-readable summary of the run.
func (r SelfCheckReport) Summary() string {
	return fmt.Sprintf("ran %d trials: %d failures", r.Trials, len(r.Failures))
}

// SelfCheck runs randomized trials of the normalizer's soundness properties
// over concrete expressions:
//
//  1. Eval(Normalize(x, t)) == Eval(x) + Eval(t) for random x and t.
//  2. Eval(t) == Eval(Canonicalize(t)).
//  3. Literals(Normalize(x, t)) == Literals(x) ++ Literals(t).
//  4. Canonicalize output is a right-anchored chain.
//
// These are the checked counterparts of the soundness theorem; structural
// induction is replaced by sampling because the host language has no proof
// kernel.
func SelfCheck(r *rand.Rand, trials, depth int) SelfCheckReport {
	config := DefaultConfig()
	normalizer := NewNormalizer(config)
	evaluator := NewEvaluator(config)
	env := NewEnv()

	report := SelfCheckReport{Trials: trials}
	for i := 0; i < trials; i++ {
		x := RandomExpr(r, depth, nil)
		t := RandomExpr(r, depth, nil)

		norm := normalizer.Normalize(x, t)
		got := evaluator.EvalExpr(norm, env)
		want := addValues(evaluator.EvalExpr(x, env), evaluator.EvalExpr(t, env))
		if !got.Equal(want) {
			report.Failures = append(report.Failures, fmt.Sprintf(
				"trial %d: Eval(Normalize(x, t)) = %s, want %s (x = %s, t = %s)",
				i, got.String(), want.String(), x.String(), t.String()))
			continue
		}

		canon := normalizer.Canonicalize(t)
		cv := evaluator.EvalExpr(canon, env)
		tv := evaluator.EvalExpr(t, env)
		if !cv.Equal(tv) {
			report.Failures = append(report.Failures, fmt.Sprintf(
				"trial %d: Eval(Canonicalize(t)) = %s, want %s (t = %s)",
				i, cv.String(), tv.String(), t.String()))
			continue
		}

		if !IsCanonical(canon) {
			report.Failures = append(report.Failures, fmt.Sprintf(
				"trial %d: Canonicalize(t) is not a chain: %s", i, canon.String()))
			continue
		}

		if !literalsPreserved(x, t, norm) {
			report.Failures = append(report.Failures, fmt.Sprintf(
				"trial %d: literal order not preserved (x = %s, t = %s)",
				i, x.String(), t.String()))
		}
	}
	return report
}

func literalsPreserved(x, t, norm Expr) bool {
	want := append(Literals(x), Literals(t)...)
	got := Literals(norm)
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if !want[i].Equal(got[i]) {
			return false
		}
	}
	return true
}
