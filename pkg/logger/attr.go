// Package logger provides slog attribute helpers shared across the SDK.
//
// Helpers follow the empty Attr pattern for nil safety: logger.Error(nil)
// produces an attribute slog silently drops, so call sites never need nil
// checks.
package logger

import (
	"log/slog"
	"strconv"
)

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component identifies the SDK component emitting the log entry.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Operation names the state-manager operation being performed.
func Operation(name string) slog.Attr {
	return slog.String("operation", name)
}

// ProductID creates an attribute for a product identifier.
func ProductID(id int64) slog.Attr {
	return slog.String("product_id", strconv.FormatInt(id, 10))
}

// Quantity creates an attribute for a line entry quantity.
func Quantity(n int) slog.Attr {
	return slog.Int("quantity", n)
}

// Key creates an attribute for a persisted record key.
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

// RequestID creates an attribute for an outgoing request correlation id.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}
