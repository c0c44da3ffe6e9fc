package newcotes

// minSubdivisions is the smallest subdivision count any rule accepts.
// Below it the step size h = (b-a)/n is degenerate.
const minSubdivisions = 1

// validate performs the shared argument checks for every rule.
// Bounds are deliberately unchecked: a > b is a valid signed interval and
// a == b integrates to 0 naturally.
// Complexity: O(1).
func validate(f Integrand, n int) error {
	if f == nil {
		return ErrNilIntegrand
	}
	if n < minSubdivisions {
		return ErrNonPositiveSubdivisions
	}

	return nil
}
