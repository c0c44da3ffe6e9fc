// Package quadra is your toolbox for estimating definite integrals with
// the classical Newton–Cotes quadrature rules — from the two-point
// trapezoid up to Boole's rule, over uniform grids.
//
// 🚀 What is quadra?
//
//	A small, thread-safe numerical integration library plus a CLI:
//		• Closed rules: trapezoid, Simpson 1/3, Simpson 3/8, Boole
//		• Open rule:    midpoint (never touches the interval endpoints)
//		• Rule catalog: runtime selection by name, with degree/stride metadata
//		• Integrands:   built-in polynomial fixtures + compiled expressions
//		• Self-test:    a fixed acceptance suite with closed-form expectations
//
// ✨ Why choose quadra?
//
//   - Beginner-friendly – five functions with one shared, obvious signature
//   - Predictable – pure functions, deterministic bit-for-bit results
//   - Honest numerics – documented accuracy caveats instead of silent fixes
//   - Scriptable – a cobra CLI with config-file and environment wiring
//
// Under the hood, everything is organized under four subpackages:
//
//	newcotes/   — the quadrature engine: the five rules, Rule/Info catalog,
//	              Integrate dispatcher and argument validation
//	integrands/ — polynomial fixtures with antiderivatives, plus the
//	              expression compiler behind --fn
//	selftest/   — the fixed verification suite shared by tests and the CLI
//	cmd/quadra  — the command-line interface (integrate, compare, selftest,
//	              suite, rules, version)
//
// Quick start:
//
//	area, err := newcotes.Simpson13(func(x float64) float64 { return x * x }, 100, 0, 1)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("∫₀¹ x² dx ≈ %.6f\n", area) // 0.333333
//
// Dive into the package docs of newcotes for the accuracy contract of each
// rule, including the Simpson 3/8 stride caveat.
//
//	go get github.com/katalvlaran/quadra
package quadra
