package newcotes_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadra/newcotes"
)

// TestMidpoint_ExactOnLinear verifies degree-1 exactness for arbitrary n:
// each sample sits at the center of its strip, so linear pieces cancel.
func TestMidpoint_ExactOnLinear(t *testing.T) {
	affine := func(x float64) float64 { return 3*x - 2 }

	for _, n := range []int{1, 3, 8, 101} {
		got, err := newcotes.Midpoint(affine, n, 0, 2)
		require.NoError(t, err, "n=%d", n)
		assert.InDelta(t, 2.0, got, fpTol, "∫₀² (3x−2) dx = 2, n=%d", n)
	}
}

// TestMidpoint_AvoidsEndpoints verifies the open-rule contract on a
// function that is undefined at both bounds: 1/√(x(1−x)) blows up at 0
// and 1, yet the estimate must stay finite because no sample touches
// either endpoint.
func TestMidpoint_AvoidsEndpoints(t *testing.T) {
	singular := func(x float64) float64 { return 1 / math.Sqrt(x*(1-x)) }

	got, err := newcotes.Midpoint(singular, 64, 0, 1)
	require.NoError(t, err)
	require.False(t, math.IsNaN(got) || math.IsInf(got, 0))

	// ∫₀¹ dx/√(x(1−x)) = π; an open rule converges slowly near the
	// integrable singularities, so only a coarse check is meaningful.
	assert.InDelta(t, math.Pi, got, 0.5)
}

// TestMidpoint_UnderestimatesConvex verifies the tangent construction:
// on a convex integrand the midpoint estimate sits below the true value,
// with half the magnitude of the trapezoid overshoot.
func TestMidpoint_UnderestimatesConvex(t *testing.T) {
	const n = 16

	mid, err := newcotes.Midpoint(square, n, 0, 1)
	require.NoError(t, err)
	trap, err := newcotes.Trapezoid(square, n, 0, 1)
	require.NoError(t, err)

	exact := 1.0 / 3.0
	assert.Less(t, mid, exact)
	assert.Greater(t, trap, exact)
	assert.InDelta(t, 2.0, (trap-exact)/(exact-mid), 0.01)
}
