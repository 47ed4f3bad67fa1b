package sum

import (
	"math/rand"
	"testing"
)

// =======================
// Evaluator Tests
// =======================

func TestLiteralEvaluation(t *testing.T) {
	ev := NewEvaluator(DefaultConfig())
	env := NewEnv()

	for _, n := range []int64{0, 1, 42, -7, 1 << 40} {
		val := ev.EvalExpr(IntLit(n), env)
		if iv, ok := val.(IntValue); !ok || iv.Val != n {
			t.Errorf("Eval(Literal(%d)) = %v, want %d", n, val, n)
		}
	}
}

func TestSumEvaluation(t *testing.T) {
	ev := NewEvaluator(DefaultConfig())
	env := NewEnv()

	val := ev.EvalExpr(Add(IntLit(2), Add(IntLit(3), IntLit(4))), env)
	if iv, ok := val.(IntValue); !ok || iv.Val != 9 {
		t.Errorf("Eval(2 + (3 + 4)) = %v, want 9", val)
	}
}

func TestSymbolResolution(t *testing.T) {
	ev := NewEvaluator(DefaultConfig())
	env := NewEnv()
	env.Set("x", IntValue{Val: 10})

	val := ev.EvalExpr(Add(Sym("x"), IntLit(5)), env)
	if iv, ok := val.(IntValue); !ok || iv.Val != 15 {
		t.Errorf("Eval(x + 5) with x=10 = %v, want 15", val)
	}

	// Unbound symbols stay symbolic.
	val = ev.EvalExpr(Sym("y"), env)
	if _, ok := val.(SymValue); !ok {
		t.Errorf("Eval(y) unbound = %v, want symbolic", val)
	}
}

// =======================
// Normalizer Tests
// =======================

func TestNormalizeLiteral(t *testing.T) {
	n := NewNormalizer(DefaultConfig())

	// normalize(x0, Literal(n)) = Sum(x0, Literal(n))
	got := n.Normalize(Sym("x0"), IntLit(5))
	want := Add(Sym("x0"), IntLit(5))
	if !ExprEqual(got, want) {
		t.Errorf("Normalize(x0, 5) = %s, want %s", got, want)
	}
}

func TestNormalizeScenario(t *testing.T) {
	n := NewNormalizer(DefaultConfig())
	ev := NewEvaluator(DefaultConfig())

	// t = (2 + 3) + 4, x = 0
	expr := Add(Add(IntLit(2), IntLit(3)), IntLit(4))
	norm := n.Normalize(Zero(), expr)

	want := Chain(Zero(), IntLit(2), IntLit(3), IntLit(4))
	if !ExprEqual(norm, want) {
		t.Errorf("Normalize(0, (2+3)+4) = %s, want %s", norm, want)
	}

	val := ev.EvalExpr(norm, NewEnv())
	if iv, ok := val.(IntValue); !ok || iv.Val != 9 {
		t.Errorf("Eval of normalized form = %v, want 9", val)
	}
}

func TestCanonicalFormsAgree(t *testing.T) {
	n := NewNormalizer(DefaultConfig())

	// 1 + (2 + 3) and (1 + 2) + 3 must canonicalize identically.
	a := Add(IntLit(1), Add(IntLit(2), IntLit(3)))
	b := Add(Add(IntLit(1), IntLit(2)), IntLit(3))

	ca := n.Canonicalize(a)
	cb := n.Canonicalize(b)

	want := Chain(Zero(), IntLit(1), IntLit(2), IntLit(3))
	if !ExprEqual(ca, want) {
		t.Errorf("Canonicalize(1+(2+3)) = %s, want %s", ca, want)
	}
	if !ExprEqual(ca, cb) {
		t.Errorf("canonical forms differ: %s vs %s", ca, cb)
	}
}

func TestGeneralSoundness(t *testing.T) {
	n := NewNormalizer(DefaultConfig())
	ev := NewEvaluator(DefaultConfig())
	env := NewEnv()

	cases := []struct {
		name string
		x, e Expr
	}{
		{"literal", IntLit(7), IntLit(3)},
		{"left-nested", IntLit(1), Add(Add(IntLit(2), IntLit(3)), IntLit(4))},
		{"right-nested", IntLit(1), Add(IntLit(2), Add(IntLit(3), IntLit(4)))},
		{"deep", Add(IntLit(1), IntLit(2)), Add(Add(IntLit(3), Add(IntLit(4), IntLit(5))), IntLit(6))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ev.EvalExpr(n.Normalize(tc.x, tc.e), env)
			want := addValues(ev.EvalExpr(tc.x, env), ev.EvalExpr(tc.e, env))
			if !got.Equal(want) {
				t.Errorf("Eval(Normalize(x, e)) = %s, want %s", got, want)
			}
		})
	}
}

func TestSpecializedSoundness(t *testing.T) {
	n := NewNormalizer(DefaultConfig())
	ev := NewEvaluator(DefaultConfig())
	env := NewEnv()

	// Eval(t) == Eval(Canonicalize(t)) with the zero anchor.
	exprs := []Expr{
		IntLit(5),
		Add(IntLit(2), IntLit(3)),
		Add(Add(IntLit(1), IntLit(2)), Add(IntLit(3), IntLit(4))),
	}
	for _, e := range exprs {
		got := ev.EvalExpr(n.Canonicalize(e), env)
		want := ev.EvalExpr(e, env)
		if !got.Equal(want) {
			t.Errorf("Eval(Canonicalize(%s)) = %s, want %s", e, got, want)
		}
	}
}

func TestOrderPreservation(t *testing.T) {
	n := NewNormalizer(DefaultConfig())

	// Differently associated trees over the same leaves keep the leaf order.
	a := Add(Sym("a"), Add(Sym("b"), Sym("c")))
	b := Add(Add(Sym("a"), Sym("b")), Sym("c"))

	la := Literals(n.Canonicalize(a))
	lb := Literals(n.Canonicalize(b))

	wantNames := []string{"0", "a", "b", "c"}
	for i, want := range wantNames {
		if la[i].String() != want || lb[i].String() != want {
			t.Errorf("literal %d: got %s / %s, want %s", i, la[i], lb[i], want)
		}
	}
}

func TestCanonicalizeProducesChain(t *testing.T) {
	n := NewNormalizer(DefaultConfig())

	e := Add(Add(Sym("a"), Add(IntLit(1), Sym("b"))), Sym("c"))
	c := n.Canonicalize(e)
	if !IsCanonical(c) {
		t.Errorf("Canonicalize(%s) = %s is not a right-anchored chain", e, c)
	}
}

func TestFoldedCanonicalizeIdempotent(t *testing.T) {
	config := DefaultConfig()
	config.FoldConstants = true
	n := NewNormalizer(config)

	// Once a chain is canonical and folded, re-canonicalizing it changes
	// nothing: the fresh zero anchor merges into the leading literal.
	exprs := []Expr{
		Add(Add(IntLit(2), IntLit(3)), IntLit(4)),
		Add(Sym("a"), Add(IntLit(1), Sym("b"))),
		Add(IntLit(1), Add(Sym("a"), Sym("b"))),
	}
	for _, e := range exprs {
		once := n.Canonicalize(e)
		twice := n.Canonicalize(once)
		if !ExprEqual(once, twice) {
			t.Errorf("re-canonicalizing %s changed %s to %s", e, once, twice)
		}
	}
}

func TestFoldMergesNumericRun(t *testing.T) {
	n := NewNormalizer(DefaultConfig())

	chain := Chain(Zero(), IntLit(2), IntLit(3), Sym("a"), IntLit(4))
	folded := n.Fold(chain)

	// Leading 0+2+3 merges to 5; the symbol stops further folding.
	want := Chain(IntLit(5), Sym("a"), IntLit(4))
	if !ExprEqual(folded, want) {
		t.Errorf("Fold(%s) = %s, want %s", chain, folded, want)
	}
}

// =======================
// Verifier Tests
// =======================

func TestReassociationClaim(t *testing.T) {
	checker := New()

	// a + (b + c) = (a + b) + c for opaque a, b, c.
	lhs := Add(Sym("a"), Add(Sym("b"), Sym("c")))
	rhs := Add(Add(Sym("a"), Sym("b")), Sym("c"))

	report := checker.Verify(lhs, rhs)
	if report.Result != Equivalent {
		t.Errorf("Expected Equivalent, got %v: %s", report.Result, report.Detail)
	}
	if report.Reason != ReasonCanonicalMatch {
		t.Errorf("Expected canonical match, got %v", report.Reason)
	}
}

func TestConcreteClaimByEvaluation(t *testing.T) {
	checker := New()

	// 2 + 3 = 5: canonical chains differ, evaluation decides.
	report := checker.Verify(Add(IntLit(2), IntLit(3)), IntLit(5))
	if report.Result != Equivalent {
		t.Errorf("Expected Equivalent, got %v: %s", report.Result, report.Detail)
	}
	if report.Reason != ReasonSameValue {
		t.Errorf("Expected same-value reason, got %v", report.Reason)
	}
}

func TestConcreteClaimNotEquivalent(t *testing.T) {
	checker := New()

	report := checker.Verify(Add(IntLit(2), IntLit(3)), IntLit(6))
	if report.Result != NotEquivalent {
		t.Errorf("Expected NotEquivalent, got %v: %s", report.Result, report.Detail)
	}
}

func TestCommutedClaimUnknown(t *testing.T) {
	checker := New()

	// a + b = b + a is true, but commutativity is beyond this procedure.
	report := checker.Verify(Add(Sym("a"), Sym("b")), Add(Sym("b"), Sym("a")))
	if report.Result != Unknown {
		t.Errorf("Expected Unknown, got %v: %s", report.Result, report.Detail)
	}
	if !ShouldWarn(report) {
		t.Errorf("Unknown result should warn")
	}
}

func TestClaimWithBindings(t *testing.T) {
	checker := New()
	env := NewEnv()
	env.Set("a", IntValue{Val: 4})

	report := checker.VerifyWithEnv(Add(Sym("a"), IntLit(1)), IntLit(5), env)
	if report.Result != Equivalent {
		t.Errorf("Expected Equivalent with a=4, got %v: %s", report.Result, report.Detail)
	}
}

func TestDepthLimit(t *testing.T) {
	config := DefaultConfig()
	config.MaxDepth = 3
	checker := NewWithConfig(config)

	deep := Chain(Zero(), IntLit(1), IntLit(2), IntLit(3), IntLit(4), IntLit(5))
	report := checker.Verify(deep, deep)
	if report.Result != Unknown || report.Reason != ReasonTooDeep {
		t.Errorf("Expected depth-limit Unknown, got %v (%v)", report.Result, report.Reason)
	}
}

// =======================
// Randomized Self-Check
// =======================

func TestSelfCheck(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	report := SelfCheck(r, 500, 6)
	if !report.OK() {
		t.Fatalf("self-check failed: %s\nfirst failure: %s",
			report.Summary(), report.Failures[0])
	}
}
