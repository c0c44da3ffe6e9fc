package newcotes

// Boole — composite Boole's rule (closed).
//
// Description:
//
//	Fits a quartic through each group of four subintervals:
//
//	  ∫ₐᵇ f ≈ 2h/45 · ( 7·f(x₀) + 32·f(x₁) + 12·f(x₂) + 32·f(x₃)
//	                    + 14·f(x₄) + 32·f(x₅) + … + 7·f(xₙ) )
//
//	Interior weights: 32 for odd indices; for even indices 14 when the
//	index is divisible by 4 (shared between two quartic segments), else 12.
//	Ideal n is a multiple of 4; other values are computed with the same
//	pattern at reduced accuracy, never rejected.
//
// Contract:
//   - f must be non-nil and pure; n must be ≥ 1.
//   - f is evaluated exactly n+1 times in ascending order.
//
// Errors: ErrNilIntegrand, ErrNonPositiveSubdivisions.
//
// Exact for polynomials up to degree 5 when 4 | n; global error O(h⁶).
// Complexity: O(n) time, O(1) memory.
func Boole(f Integrand, n int, a, b float64) (float64, error) {
	if err := validate(f, n); err != nil {
		return 0, err
	}

	h := (b - a) / float64(n)

	sum := 7 * f(a)
	for i := 1; i < n; i++ {
		switch {
		case i%2 != 0:
			sum += 32 * f(a+float64(i)*h)
		case i%4 == 0:
			sum += 14 * f(a+float64(i)*h)
		default:
			sum += 12 * f(a+float64(i)*h)
		}
	}
	sum += 7 * f(b)

	return 2 * sum * h / 45, nil
}
