// Package newcotes - rule dispatcher.
//
// Integrate is the runtime-selection entry point: callers that receive the
// rule as data (flag value, config key, suite file) route through it instead
// of binding one of the rule functions at compile time.
package newcotes

// Integrate applies rule r to f over [a,b] with n subdivisions.
//
// It performs no validation of its own beyond the rule lookup: argument
// checks live in the rule functions, so Integrate(f, RuleTrapezoid, …) and
// Trapezoid(f, …) are interchangeable call-for-call.
//
// Errors: ErrUnknownRule for a rule outside the supported set, plus
// whatever the selected rule returns.
// Complexity: that of the selected rule, O(n).
func Integrate(f Integrand, r Rule, n int, a, b float64) (float64, error) {
	switch r {
	case RuleTrapezoid:
		return Trapezoid(f, n, a, b)
	case RuleMidpoint:
		return Midpoint(f, n, a, b)
	case RuleSimpson13:
		return Simpson13(f, n, a, b)
	case RuleSimpson38:
		return Simpson38(f, n, a, b)
	case RuleBoole:
		return Boole(f, n, a, b)
	default:
		return 0, ErrUnknownRule
	}
}
