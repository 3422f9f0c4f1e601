package optim

import "errors"

// Optimization errors.
var (
	ErrGradientLength = errors.New("gradient length does not match parameters")
	ErrNotConverged   = errors.New("did not converge")
	ErrNonFinite      = errors.New("non-finite gradient")
	ErrNoParameters   = errors.New("no parameters to optimize")
)
