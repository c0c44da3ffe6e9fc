// Package newcotes approximates definite integrals of single-variable real
// functions with Newton–Cotes quadrature rules over equally spaced samples.
//
// 🚀 What is Newton–Cotes quadrature?
//
//	A family of formulas that estimate ∫ₐᵇ f(x) dx as a weighted sum of
//	f evaluated at equally spaced points.  Closed rules sample the
//	endpoints a and b; open rules sample only interior points.  The
//	package ships the five classic members:
//	  • Trapezoid          — closed, weights ½,1,…,1,½, scale h
//	  • Midpoint           — open, one sample per subinterval midpoint, scale h
//	  • Simpson 1/3        — closed, weights 1,4,2,4,…,4,1, scale h/3
//	  • Simpson 3/8        — closed, weights 1,3,3,2,3,3,…,3,1, scale 3h/8
//	  • Boole              — closed, weights 7,32,12,32,14,…,32,7, scale 2h/45
//
// ✨ Key properties:
//   - Pure functions: no state, no allocation, reentrant and safe for
//     concurrent use as long as the integrand itself is pure.
//   - Exactly n+1 integrand evaluations for closed rules, n for the
//     midpoint rule, in ascending x order.
//   - Signed intervals: a > b yields the negated estimate, matching
//     ∫ₐᵇ = −∫ᵦₐ; no ordering of the bounds is enforced.
//   - IEEE float64 throughout; NaN or Inf produced by the integrand
//     propagate to the result untouched.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/quadra/newcotes"
//
//	area, err := newcotes.Simpson13(func(x float64) float64 {
//		return x * x
//	}, 1000, 0, 1)
//	// area ≈ 1/3
//
//	// or select a rule by value:
//	area, err = newcotes.Integrate(f, newcotes.RuleBoole, 400, 0, 2)
//
// Accuracy caveat (intentional): Simpson 3/8 assumes groups of three
// subintervals and Boole groups of four.  When n is not a multiple of the
// rule's stride the sum is still computed with the same weight pattern and
// simply converges more slowly; no error is raised.  Rule.Info().Stride
// reports the ideal divisibility so callers can pick a friendly n.
//
// Performance: every rule is a single O(n) pass with O(1) memory.
//
// See example_test.go for runnable examples.
package newcotes
