package state

import "errors"

var (
	// ErrNotFound is returned when no record exists under the given key.
	ErrNotFound = errors.New("state record not found")
	// ErrInvalidKey is returned for empty keys or keys containing path separators.
	ErrInvalidKey = errors.New("invalid state record key")
	// ErrVersionMismatch is returned when a record was written with an
	// unsupported schema version.
	ErrVersionMismatch = errors.New("state record schema version mismatch")
	// ErrConnectionFailed is returned when the redis backend cannot be reached.
	ErrConnectionFailed = errors.New("failed to connect to redis")
	// ErrHealthcheckFailed is returned when a redis health probe fails.
	ErrHealthcheckFailed = errors.New("redis healthcheck failed")
)
