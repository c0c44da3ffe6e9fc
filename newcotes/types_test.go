package newcotes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadra/newcotes"
)

// TestParseRule covers canonical names, historical aliases, separator and
// case normalization, and the unknown-name sentinel.
func TestParseRule(t *testing.T) {
	cases := []struct {
		name string
		want newcotes.Rule
		ok   bool
	}{
		{"trapezoid", newcotes.RuleTrapezoid, true},
		{"midpoint", newcotes.RuleMidpoint, true},
		{"simpson13", newcotes.RuleSimpson13, true},
		{"simpson38", newcotes.RuleSimpson38, true},
		{"boole", newcotes.RuleBoole, true},

		{"Simpson 1/3", newcotes.RuleSimpson13, true},
		{"simpson-3/8", newcotes.RuleSimpson38, true},
		{"Mid-Point", newcotes.RuleMidpoint, true},
		{"  TRAPEZOID  ", newcotes.RuleTrapezoid, true},
		{"simpson_1_3", newcotes.RuleSimpson13, true},
		{"BOOLE", newcotes.RuleBoole, true},

		{"", 0, false},
		{"gauss", 0, false},
		{"simpson", 0, false},
		{"simpson12", 0, false},
	}

	for _, tc := range cases {
		got, err := newcotes.ParseRule(tc.name)
		if tc.ok {
			require.NoError(t, err, "name %q", tc.name)
			assert.Equal(t, tc.want, got, "name %q", tc.name)
		} else {
			require.ErrorIs(t, err, newcotes.ErrUnknownRule, "name %q", tc.name)
			assert.Contains(t, err.Error(), "newcotes:", "sentinel must keep its package prefix")
		}
	}
}

// TestParseRule_RoundTrip verifies String output parses back to the same
// rule for every member of the catalog.
func TestParseRule_RoundTrip(t *testing.T) {
	for _, r := range newcotes.Rules() {
		back, err := newcotes.ParseRule(r.String())
		require.NoError(t, err, "rule %s", r)
		assert.Equal(t, r, back)
	}
}

// TestRuleInfo verifies the catalog invariants: non-empty unique names,
// odd polynomial degrees, strides matching the weight patterns, and the
// midpoint rule as the only open member.
func TestRuleInfo(t *testing.T) {
	wantStride := map[newcotes.Rule]int{
		newcotes.RuleTrapezoid: 1,
		newcotes.RuleMidpoint:  1,
		newcotes.RuleSimpson13: 2,
		newcotes.RuleSimpson38: 3,
		newcotes.RuleBoole:     4,
	}
	wantDegree := map[newcotes.Rule]int{
		newcotes.RuleTrapezoid: 1,
		newcotes.RuleMidpoint:  1,
		newcotes.RuleSimpson13: 3,
		newcotes.RuleSimpson38: 3,
		newcotes.RuleBoole:     5,
	}

	seen := make(map[string]bool)
	for _, r := range newcotes.Rules() {
		info := r.Info()

		require.NotEmpty(t, info.Name, "rule %d", int(r))
		assert.False(t, seen[info.Name], "duplicate name %q", info.Name)
		seen[info.Name] = true

		assert.Equal(t, info.Name, r.String())
		assert.Equal(t, wantStride[r], info.Stride, "rule %s", r)
		assert.Equal(t, wantDegree[r], info.Degree, "rule %s", r)
		assert.Equal(t, r != newcotes.RuleMidpoint, info.Closed, "rule %s", r)
	}
}

// TestRuleInfo_OutOfRange verifies unknown Rule values degrade cleanly.
func TestRuleInfo_OutOfRange(t *testing.T) {
	for _, r := range []newcotes.Rule{newcotes.Rule(-3), newcotes.Rule(42)} {
		assert.Equal(t, newcotes.Info{}, r.Info())
		assert.Contains(t, r.String(), "rule(")
	}
}

// TestRules_Order verifies declaration order and that each call returns
// an independent slice.
func TestRules_Order(t *testing.T) {
	first := newcotes.Rules()
	require.Equal(t, []newcotes.Rule{
		newcotes.RuleTrapezoid,
		newcotes.RuleMidpoint,
		newcotes.RuleSimpson13,
		newcotes.RuleSimpson38,
		newcotes.RuleBoole,
	}, first)

	first[0] = newcotes.RuleBoole
	second := newcotes.Rules()
	assert.Equal(t, newcotes.RuleTrapezoid, second[0], "Rules must return a fresh slice")
}
