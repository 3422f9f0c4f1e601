package dual

import "errors"

// Value errors.
var (
	ErrMissingValue   = errors.New("independent variable needs an initial value")
	ErrNotIndependent = errors.New("not an independent variable")
	ErrTypeMismatch   = errors.New("not a dual value of this session")
)
