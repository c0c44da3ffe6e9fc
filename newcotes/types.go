// Package newcotes defines the integrand contract and the rule catalog.
package newcotes

import (
	"fmt"
	"strings"
)

// Integrand maps a real number to a real number: the function being
// integrated.
//
// Every rule assumes the integrand is pure — calling it twice with the same
// argument must return the same value, and it must not mutate shared state.
// Purity is a documented precondition, not something the package can check;
// an impure integrand silently invalidates the estimate and the package's
// concurrency guarantees.
type Integrand func(x float64) float64

// Rule selects one of the supported Newton–Cotes quadrature rules.
// It plays the role a function pointer would in a C-style API: callers that
// pick a rule at runtime (CLIs, config files, test tables) pass a Rule to
// Integrate instead of referencing the rule functions directly.
type Rule int

const (
	// RuleTrapezoid — closed, two-point base formula repeated n times.
	RuleTrapezoid Rule = iota

	// RuleMidpoint — open, samples the midpoint of each subinterval.
	RuleMidpoint

	// RuleSimpson13 — closed, Simpson's 1/3 rule (parabolic segments).
	RuleSimpson13

	// RuleSimpson38 — closed, Simpson's 3/8 rule (cubic segments).
	RuleSimpson38

	// RuleBoole — closed, Boole's rule (quartic segments).
	RuleBoole

	// numRules bounds the valid Rule range; keep it last.
	numRules
)

// Info carries static metadata about a quadrature rule.
//
// Fields:
//   - Name   — canonical lowercase name, accepted by ParseRule.
//   - Degree — highest polynomial degree the rule integrates exactly
//     (given a stride-friendly n).
//   - Closed — whether the rule samples the interval endpoints.
//   - Stride — ideal subdivision divisibility (1 when any n ≥ 1 is ideal).
//     Informational only: rules never reject a stride-unfriendly n, they
//     just lose accuracy (see the package doc's accuracy caveat).
type Info struct {
	Name   string
	Degree int
	Closed bool
	Stride int
}

// ruleInfos is the static rule catalog, indexed by Rule.
var ruleInfos = [numRules]Info{
	RuleTrapezoid: {Name: "trapezoid", Degree: 1, Closed: true, Stride: 1},
	RuleMidpoint:  {Name: "midpoint", Degree: 1, Closed: false, Stride: 1},
	RuleSimpson13: {Name: "simpson13", Degree: 3, Closed: true, Stride: 2},
	RuleSimpson38: {Name: "simpson38", Degree: 3, Closed: true, Stride: 3},
	RuleBoole:     {Name: "boole", Degree: 5, Closed: true, Stride: 4},
}

// Info returns the static metadata for r.
// Unknown rules yield a zero Info; Integrate reports them as ErrUnknownRule.
// Complexity: O(1).
func (r Rule) Info() Info {
	if r < 0 || r >= numRules {
		return Info{}
	}

	return ruleInfos[r]
}

// String returns the canonical rule name, or "rule(N)" for values outside
// the supported set.
func (r Rule) String() string {
	if r < 0 || r >= numRules {
		return fmt.Sprintf("rule(%d)", int(r))
	}

	return ruleInfos[r].Name
}

// Rules returns all supported rules in declaration order.
// The returned slice is fresh on every call; callers may mutate it freely.
func Rules() []Rule {
	all := make([]Rule, 0, numRules)
	for r := Rule(0); r < numRules; r++ {
		all = append(all, r)
	}

	return all
}

// ParseRule resolves a rule by name, case-insensitively.
// Canonical names are the Info.Name values ("trapezoid", "midpoint",
// "simpson13", "simpson38", "boole"); the historical labels
// "simpson 1/3", "simpson 3/8" and "mid-point" are accepted as aliases.
// Returns ErrUnknownRule when the name matches nothing.
func ParseRule(name string) (Rule, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer(" ", "", "-", "", "_", "", "/", "").Replace(key)

	switch key {
	case "trapezoid":
		return RuleTrapezoid, nil
	case "midpoint":
		return RuleMidpoint, nil
	case "simpson13":
		return RuleSimpson13, nil
	case "simpson38":
		return RuleSimpson38, nil
	case "boole":
		return RuleBoole, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
}
