package newcotes

import "errors"

var (
	// ErrNilIntegrand indicates the integrand argument was nil.
	ErrNilIntegrand = errors.New("newcotes: integrand must be non-nil")

	// ErrNonPositiveSubdivisions indicates a subdivision count below 1,
	// which would make the step size h = (b-a)/n degenerate.
	ErrNonPositiveSubdivisions = errors.New("newcotes: subdivision count must be at least 1")

	// ErrUnknownRule indicates a Rule value outside the supported set.
	ErrUnknownRule = errors.New("newcotes: unknown quadrature rule")
)
