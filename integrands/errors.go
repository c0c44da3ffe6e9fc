package integrands

import "errors"

// ErrUnknownIntegrand indicates Lookup received a name outside the fixed
// catalog. Branch with errors.Is; the wrapped message carries the name.
var ErrUnknownIntegrand = errors.New("integrands: unknown integrand")

// ErrBadExpression indicates Compile could not turn the expression into a
// working integrand: a parse failure, an unknown variable or function, or
// a bad arity. Runtime domain faults are NOT this error — they surface as
// NaN samples from the compiled integrand.
var ErrBadExpression = errors.New("integrands: invalid expression")
