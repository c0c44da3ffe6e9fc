package selftest

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/quadra/integrands"
	"github.com/katalvlaran/quadra/newcotes"
)

// DefaultTol is the absolute acceptance tolerance for the default suite.
const DefaultTol = 1e-5

// Suite geometry: the canonical interval and the two grid resolutions.
// n=100 keeps the historical linear table (and its Simpson 3/8 miss);
// n=2400 is divisible by every rule stride and fine enough for the
// second-order rules to clear DefaultTol on the higher-degree fixtures.
const (
	defaultLo = 1.0
	defaultHi = 3.0

	linearN = 100
	polyN   = 2400
)

// Case is one quadrature acceptance check.
type Case struct {
	// Integrand names a fixture from the integrands catalog.
	Integrand string

	// Rule, N, A, B are the Integrate arguments.
	Rule newcotes.Rule
	N    int
	A, B float64

	// Want is the closed-form value of the integral.
	Want float64

	// WantMiss inverts the acceptance: the case passes only when the
	// estimate lands OUTSIDE tolerance. Used for documented deviations
	// that must stay visible (a silent "fix" would hide a behavior
	// change).
	WantMiss bool
}

// Result is the outcome of one executed Case.
type Result struct {
	Case

	// Got is the estimate Integrate returned.
	Got float64

	// Delta is the signed deviation Got − Want.
	Delta float64

	// Hit reports whether Got lies within tolerance of Want.
	Hit bool

	// Pass reports whether the case met its expectation:
	// Hit for ordinary cases, a miss for WantMiss cases.
	Pass bool
}

// DefaultSuite returns the fixed acceptance table: every rule × the
// catalog fixtures over [1,3].
//
// The linear block runs at n=100: four rules reproduce 4.0, while the
// Simpson 3/8 case is marked WantMiss — 3∤100 leaves the final weight
// group unclosed and the estimate lands near 3.98505. The square and
// cube blocks run at n=2400, where every weight pattern closes and even
// the trapezoid clears DefaultTol.
//
// The slice is fresh on every call.
func DefaultSuite() []Case {
	var suite []Case

	// f(x) = x over [1,3]: exactly 4.
	for _, r := range newcotes.Rules() {
		suite = append(suite, Case{
			Integrand: "identity",
			Rule:      r,
			N:         linearN,
			A:         defaultLo,
			B:         defaultHi,
			Want:      4,
			WantMiss:  r == newcotes.RuleSimpson38,
		})
	}

	// f(x) = x² over [1,3]: exactly 26/3.
	for _, r := range newcotes.Rules() {
		suite = append(suite, Case{
			Integrand: "square",
			Rule:      r,
			N:         polyN,
			A:         defaultLo,
			B:         defaultHi,
			Want:      26.0 / 3.0,
		})
	}

	// f(x) = x³ over [1,3]: exactly 20.
	for _, r := range newcotes.Rules() {
		suite = append(suite, Case{
			Integrand: "cube",
			Rule:      r,
			N:         polyN,
			A:         defaultLo,
			B:         defaultHi,
			Want:      20,
		})
	}

	return suite
}

// Run executes every case in order and reports per-case outcomes.
//
// A tol ≤ 0 falls back to DefaultTol. Run fails fast with an error when
// a case is malformed — an unknown integrand name or arguments the
// engine rejects — since that is a defect in the suite, not a numeric
// outcome. Numeric deviations never error: they show up as Pass=false.
func Run(cases []Case, tol float64) ([]Result, error) {
	if tol <= 0 {
		tol = DefaultTol
	}

	results := make([]Result, 0, len(cases))
	for i, c := range cases {
		fx, err := integrands.Lookup(c.Integrand)
		if err != nil {
			return nil, fmt.Errorf("case %d (%s, %s): %w", i, c.Integrand, c.Rule, err)
		}

		got, err := newcotes.Integrate(fx.F, c.Rule, c.N, c.A, c.B)
		if err != nil {
			return nil, fmt.Errorf("case %d (%s, %s): %w", i, c.Integrand, c.Rule, err)
		}

		hit := scalar.EqualWithinAbs(got, c.Want, tol)
		results = append(results, Result{
			Case:  c,
			Got:   got,
			Delta: got - c.Want,
			Hit:   hit,
			Pass:  hit != c.WantMiss,
		})
	}

	return results, nil
}

// AllPassed reports whether every result met its expectation.
func AllPassed(results []Result) bool {
	for _, res := range results {
		if !res.Pass {
			return false
		}
	}

	return true
}
