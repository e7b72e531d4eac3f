package workorder

import "errors"

var (
	// ErrWorkOrderNotFound indicates the work order doesn't exist.
	ErrWorkOrderNotFound = errors.New("work order not found")
	// ErrInvalidInput indicates invalid work order input.
	ErrInvalidInput = errors.New("invalid work order input")
	// ErrInvalidTransition indicates a disallowed status change.
	ErrInvalidTransition = errors.New("invalid work order status transition")
)
