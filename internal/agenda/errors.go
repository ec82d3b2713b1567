package agenda

import "errors"

// Domain-specific errors for the agenda package.
var (
	ErrNotExecutable = errors.New("intent is not executable")
	ErrNotResolvable = errors.New("intent carries no query to resolve")
	ErrNotMatched    = errors.New("action is not a matched target")
)
