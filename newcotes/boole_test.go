package newcotes_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadra/newcotes"
)

// TestBoole_ExactOnQuintics exercises the degree-5 guarantee: a single
// four-strip panel reproduces ∫₀¹ x⁵ dx = 1/6.  With h = 0.25 every
// sample, weight and partial product is binary-exact (the weighted sum
// is the integer 15), so the result is bit-for-bit equal to 1.0/6.0.
func TestBoole_ExactOnQuintics(t *testing.T) {
	quintic := func(x float64) float64 { return x * x * x * x * x }

	got, err := newcotes.Boole(quintic, 4, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0/6.0, got)
}

// TestBoole_ExactOnQuartics verifies composite exactness on x⁴ across
// several stride-friendly n.
func TestBoole_ExactOnQuartics(t *testing.T) {
	quartic := func(x float64) float64 { return x * x * x * x }

	for _, n := range []int{4, 8, 40} {
		got, err := newcotes.Boole(quartic, n, 0, 1)
		require.NoError(t, err, "n=%d", n)
		assert.InDelta(t, 0.2, got, fpTol, "n=%d", n)
	}
}

// TestBoole_StrideUnfriendlyN verifies n outside the 4-strip pattern is
// tolerated: the unclosed final group costs accuracy but the estimate
// still lands near the true value for large n.
func TestBoole_StrideUnfriendlyN(t *testing.T) {
	for _, n := range []int{5, 101, 1002} {
		got, err := newcotes.Boole(square, n, 0, 1)
		require.NoError(t, err, "n=%d", n)
		assert.False(t, math.IsNaN(got))
		assert.InDelta(t, 1.0/3.0, got, 0.1, "n=%d", n)
	}
}

// TestBoole_HighOrderBeatsSimpson compares the two closed rules at equal
// cost on a smooth non-polynomial integrand: ∫₀¹ eˣ dx = e − 1.  At the
// same n the degree-5 rule must be at least two decades closer.
func TestBoole_HighOrderBeatsSimpson(t *testing.T) {
	const n = 16
	want := math.E - 1

	boole, err := newcotes.Boole(math.Exp, n, 0, 1)
	require.NoError(t, err)
	simpson, err := newcotes.Simpson13(math.Exp, n, 0, 1)
	require.NoError(t, err)

	booleErr := math.Abs(boole - want)
	simpsonErr := math.Abs(simpson - want)
	assert.Less(t, booleErr, simpsonErr/100)
}
