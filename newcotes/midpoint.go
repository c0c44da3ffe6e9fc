package newcotes

// Midpoint — composite midpoint rule (open).
//
// Description:
//
//	The only open rule in the package: it never touches the endpoints,
//	sampling instead the center of each of the n subintervals:
//
//	  ∫ₐᵇ f ≈ h · Σᵢ₌₀ⁿ⁻¹ f(a + h/2 + i·h),  h = (b-a)/n
//
//	Useful when f is undefined or ill-behaved at a or b (e.g. ∫₀¹ ln x dx).
//
// Contract:
//   - f must be non-nil and pure; n must be ≥ 1.
//   - f is evaluated exactly n times, strictly inside (a,b), in ascending
//     order.
//
// Errors: ErrNilIntegrand, ErrNonPositiveSubdivisions.
//
// Exact for polynomials up to degree 1; global error O(h²) for smooth f.
// Complexity: O(n) time, O(1) memory.
func Midpoint(f Integrand, n int, a, b float64) (float64, error) {
	if err := validate(f, n); err != nil {
		return 0, err
	}

	h := (b - a) / float64(n)

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += f((a + h/2.0) + float64(i)*h)
	}

	return sum * h, nil
}
