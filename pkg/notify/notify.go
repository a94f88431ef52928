// Package notify delivers user-facing confirmations emitted by state managers,
// such as "Product added to cart". The embedding UI decides how to surface
// them (toast, status bar, terminal); the default sink logs at info level.
package notify

import "log/slog"

// Notifier receives user-facing confirmation messages.
// Implementations must not block.
type Notifier interface {
	Notify(message string)
}

// Func adapts a plain function to the Notifier interface.
type Func func(message string)

func (f Func) Notify(message string) { f(message) }

// Discard drops all messages.
var Discard Notifier = Func(func(string) {})

// Slog returns a Notifier that logs messages at info level.
// A nil logger falls back to slog.Default().
func Slog(log *slog.Logger) Notifier {
	if log == nil {
		log = slog.Default()
	}
	return Func(func(message string) {
		log.Info(message)
	})
}
