package supplement

import "errors"

// Domain-specific errors for the supplement package.
var (
	ErrUnknownSupplement = errors.New("no configured supplement matches")
	ErrAlreadyTaken      = errors.New("supplement already taken today")
	ErrNotScheduled      = errors.New("supplement not scheduled for today")
)
