package domain

import "errors"

var (
	// ErrInvalidArgument covers every request validation failure: empty
	// event or step lists, reversed date ranges, unknown intervals, wrong
	// filter value arity and duplicate dimension aliases.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedOperator is returned for filter operators outside the
	// recognized set.
	ErrUnsupportedOperator = errors.New("unsupported operator")

	// ErrExecutorFailure wraps any failure surfaced by the query executor.
	// The underlying message is preserved, never translated.
	ErrExecutorFailure = errors.New("executor failure")
)
