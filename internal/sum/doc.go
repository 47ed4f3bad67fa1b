// Package sum implements the canonicalization core for addition expressions.
//
// An expression is either a literal (a numeric constant or an opaque symbol)
// or the sum of two sub-expressions. The normalizer rewrites any such tree
// into a right-anchored chain of additions, preserving the left-to-right
// order of the literals it encounters. Two expressions that differ only in
// how their additions are associated canonicalize to structurally identical
// chains, which is how the verifier discharges reassociation claims.
//
// In scope:
//   - reassociating nested additions into a canonical chain
//   - deciding claims whose sides are equal up to associativity
//   - deciding fully numeric claims by evaluation
//
// Out of scope (reported as Unknown):
//   - commuted operands (a + b vs b + a)
//   - any algebraic law beyond associativity of addition
package sum
