// Package integrands supplies ready-made integrands for the quadrature
// rules in package newcotes: a small catalog of polynomial fixtures with
// closed-form antiderivatives, and a compiler that turns command-line
// expressions such as "x*x" or "sin(x)/x" into newcotes.Integrand values.
//
// The package offers the following key components:
//
//   - Named fixtures:
//     – Identity:  f(x) = x
//     – Square:    f(x) = x²
//     – Cube:      f(x) = x³
//   - Fixture metadata:
//     – Fixture:   pairs an integrand with its antiderivative.
//     – Exact:     evaluates the true integral via the antiderivative.
//     – Fixtures:  the fixed catalog used by the verification harness.
//     – Lookup:    resolves a fixture by name (ErrUnknownIntegrand).
//   - Expression support:
//     – Compile:   parses an expression in the variable x into an
//       Integrand, with sin/cos/tan/exp/log/sqrt/abs/pow available
//       (ErrBadExpression on parse or probe failure).
//
// Compiled integrands follow the package-wide numeric policy: runtime
// domain faults (log of a negative number, 0/0, overflow) surface as NaN
// or ±Inf in the returned samples, never as errors.
package integrands
