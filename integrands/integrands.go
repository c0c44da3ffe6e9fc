package integrands

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/quadra/newcotes"
)

// Identity is f(x) = x, the linear fixture.
// Every rule in the catalog integrates it exactly given a stride-friendly
// subdivision count.
func Identity(x float64) float64 { return x }

// Square is f(x) = x², the quadratic fixture.
func Square(x float64) float64 { return x * x }

// Cube is f(x) = x³, the cubic fixture.
func Cube(x float64) float64 { return x * x * x }

// Fixture pairs an integrand with its closed-form antiderivative, so
// tests and the verification harness can compute the true integral
// without hard-coding per-interval constants.
type Fixture struct {
	// Name is the canonical lowercase identifier accepted by Lookup.
	Name string

	// F is the integrand itself.
	F newcotes.Integrand

	// Primitive is an antiderivative of F.
	Primitive func(x float64) float64
}

// Exact returns the true value of ∫ₐᵇ F(x) dx via the fundamental
// theorem: Primitive(b) − Primitive(a). Signed like the quadrature
// rules: swapping the bounds negates the result.
func (fx Fixture) Exact(a, b float64) float64 {
	return fx.Primitive(b) - fx.Primitive(a)
}

// catalog is the fixed fixture set, in presentation order.
var catalog = []Fixture{
	{
		Name:      "identity",
		F:         Identity,
		Primitive: func(x float64) float64 { return x * x / 2 },
	},
	{
		Name:      "square",
		F:         Square,
		Primitive: func(x float64) float64 { return x * x * x / 3 },
	},
	{
		Name:      "cube",
		F:         Cube,
		Primitive: func(x float64) float64 { return x * x * x * x / 4 },
	},
}

// Fixtures returns the fixed catalog (identity, square, cube) in
// presentation order. The slice is fresh on every call; callers may
// reorder or filter it freely.
func Fixtures() []Fixture {
	out := make([]Fixture, len(catalog))
	copy(out, catalog)

	return out
}

// Lookup resolves a fixture by name, case-insensitively.
// Returns ErrUnknownIntegrand (wrapped with the offending name) when the
// catalog has no match.
func Lookup(name string) (Fixture, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, fx := range catalog {
		if fx.Name == key {
			return fx, nil
		}
	}

	return Fixture{}, fmt.Errorf("%w: %q", ErrUnknownIntegrand, name)
}
