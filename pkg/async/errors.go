package async

import "errors"

var (
	// ErrTimeout is returned when awaiting a future exceeds the given timeout.
	ErrTimeout = errors.New("async operation timed out")
)
