package newcotes

// Trapezoid — composite trapezoid rule (closed).
//
// Description:
//
//	Splits [a,b] into n equal subintervals of width h = (b-a)/n and sums
//	the areas of the trapezoids spanned by consecutive samples:
//
//	  ∫ₐᵇ f ≈ h · ( ½·f(x₀) + f(x₁) + … + f(xₙ₋₁) + ½·f(xₙ) ),  xᵢ = a + i·h
//
// Contract:
//   - f must be non-nil and pure; n must be ≥ 1.
//   - f is evaluated exactly n+1 times, at x₀ … xₙ in ascending order.
//   - a > b is allowed and yields the negated estimate (h goes negative).
//
// Errors: ErrNilIntegrand, ErrNonPositiveSubdivisions.
//
// Exact for polynomials up to degree 1; global error O(h²) for smooth f.
// Complexity: O(n) time, O(1) memory.
func Trapezoid(f Integrand, n int, a, b float64) (float64, error) {
	if err := validate(f, n); err != nil {
		return 0, err
	}

	h := (b - a) / float64(n)

	// Endpoints carry half weight; interior points full weight.
	sum := 0.5 * f(a)
	for i := 1; i < n; i++ {
		sum += f(a + float64(i)*h)
	}
	sum += 0.5 * f(b)

	return sum * h, nil
}
