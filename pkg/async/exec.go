package async

import (
	"context"
	"time"
)

// Future represents the result of a function running in the background.
// The zero value is not usable; obtain futures from Exec or Resolved.
type Future struct {
	err  error
	done chan struct{}
}

// Await blocks until the function completes and returns its error.
func (f *Future) Await() error {
	<-f.done
	return f.err
}

// AwaitWithTimeout blocks until the function completes or the timeout elapses.
// Returns ErrTimeout if the timeout fires first; the function keeps running.
func (f *Future) AwaitWithTimeout(timeout time.Duration) error {
	select {
	case <-f.done:
		return f.err
	case <-time.After(timeout):
		return ErrTimeout
	}
}

// IsComplete reports whether the function has finished, without blocking.
func (f *Future) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Exec runs fn in a new goroutine and returns a Future for its result.
// A pre-canceled context short-circuits without invoking fn.
func Exec(ctx context.Context, fn func(context.Context) error) *Future {
	f := &Future{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.err = fn(ctx)
	}()

	return f
}

// Resolved returns an already-completed Future carrying err.
// Useful when the asynchronous branch of an operation is skipped but the
// call site still returns a Future.
func Resolved(err error) *Future {
	f := &Future{err: err, done: make(chan struct{})}
	close(f.done)
	return f
}

// Join waits for all futures and returns the first non-nil error encountered,
// in argument order.
func Join(futures ...*Future) error {
	var first error
	for _, f := range futures {
		if err := f.Await(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
