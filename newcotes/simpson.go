package newcotes

// Simpson13 — composite Simpson 1/3 rule (closed).
//
// Description:
//
//	Fits a parabola through each pair of adjacent subintervals, which
//	collapses into the classic alternating weight pattern:
//
//	  ∫ₐᵇ f ≈ h/3 · ( f(x₀) + 4·f(x₁) + 2·f(x₂) + 4·f(x₃) + … + f(xₙ) )
//
//	Interior points with even index weigh 2, odd index 4.  Even n matches
//	the parabola pairing exactly; odd n is still computed with the same
//	pattern at reduced accuracy (see the package accuracy caveat).
//
// Contract:
//   - f must be non-nil and pure; n must be ≥ 1.
//   - f is evaluated exactly n+1 times in ascending order.
//
// Errors: ErrNilIntegrand, ErrNonPositiveSubdivisions.
//
// Exact for polynomials up to degree 3; global error O(h⁴) for smooth f.
// Complexity: O(n) time, O(1) memory.
func Simpson13(f Integrand, n int, a, b float64) (float64, error) {
	if err := validate(f, n); err != nil {
		return 0, err
	}

	h := (b - a) / float64(n)

	sum := f(a)
	for i := 1; i < n; i++ {
		if i%2 == 0 {
			sum += 2 * f(a+float64(i)*h)
		} else {
			sum += 4 * f(a+float64(i)*h)
		}
	}
	sum += f(b)

	return sum * h / 3, nil
}

// Simpson38 — composite Simpson 3/8 rule (closed).
//
// Description:
//
//	Fits a cubic through each group of three subintervals:
//
//	  ∫ₐᵇ f ≈ 3h/8 · ( f(x₀) + 3·f(x₁) + 3·f(x₂) + 2·f(x₃) + … + f(xₙ) )
//
//	Interior points whose index is divisible by 3 weigh 2 (shared between
//	two cubic segments), all others weigh 3.
//
// Accuracy caveat, preserved on purpose: the 1-3-3-2 pattern assumes n is
// a multiple of 3.  Any other n leaves the last group incomplete and the
// estimate measurably off even for integrands an exact lower-order rule
// would nail — ∫₁³ x dx with n = 100 famously misses 4.0 by more than
// 1e-5.  The rule still computes and returns that estimate; it does not
// round n up, fall back to another rule, or error.
//
// Contract:
//   - f must be non-nil and pure; n must be ≥ 1.
//   - f is evaluated exactly n+1 times in ascending order.
//
// Errors: ErrNilIntegrand, ErrNonPositiveSubdivisions.
//
// Exact for polynomials up to degree 3 when 3 | n; global error O(h⁴).
// Complexity: O(n) time, O(1) memory.
func Simpson38(f Integrand, n int, a, b float64) (float64, error) {
	if err := validate(f, n); err != nil {
		return 0, err
	}

	h := (b - a) / float64(n)

	sum := f(a)
	for i := 1; i < n; i++ {
		if i%3 == 0 {
			sum += 2 * f(a+float64(i)*h)
		} else {
			sum += 3 * f(a+float64(i)*h)
		}
	}
	sum += f(b)

	return sum * h * 3 / 8, nil
}
