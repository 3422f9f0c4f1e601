package session

import "errors"

// Registry errors.
var (
	ErrCapacityFixed    = errors.New("capacity already fixed")
	ErrCapacityExceeded = errors.New("too many independent variables")
	ErrInvalidCapacity  = errors.New("capacity must be positive")
	ErrSlotOutOfRange   = errors.New("slot out of range")
)
