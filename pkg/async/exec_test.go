package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/async"
)

func TestExec(t *testing.T) {
	t.Run("completes successfully", func(t *testing.T) {
		f := async.Exec(context.Background(), func(ctx context.Context) error {
			return nil
		})
		require.NoError(t, f.Await())
		assert.True(t, f.IsComplete())
	})

	t.Run("propagates function error", func(t *testing.T) {
		wantErr := errors.New("remote unavailable")
		f := async.Exec(context.Background(), func(ctx context.Context) error {
			return wantErr
		})
		assert.ErrorIs(t, f.Await(), wantErr)
	})

	t.Run("short-circuits on pre-canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		invoked := false
		f := async.Exec(ctx, func(ctx context.Context) error {
			invoked = true
			return nil
		})

		assert.ErrorIs(t, f.Await(), context.Canceled)
		assert.False(t, invoked)
	})

	t.Run("is not complete while running", func(t *testing.T) {
		release := make(chan struct{})
		f := async.Exec(context.Background(), func(ctx context.Context) error {
			<-release
			return nil
		})

		assert.False(t, f.IsComplete())
		close(release)
		require.NoError(t, f.Await())
	})
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Run("returns result before timeout", func(t *testing.T) {
		f := async.Exec(context.Background(), func(ctx context.Context) error {
			return nil
		})
		assert.NoError(t, f.AwaitWithTimeout(time.Second))
	})

	t.Run("times out on slow function", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)

		f := async.Exec(context.Background(), func(ctx context.Context) error {
			<-release
			return nil
		})
		assert.ErrorIs(t, f.AwaitWithTimeout(10*time.Millisecond), async.ErrTimeout)
	})
}

func TestResolved(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		f := async.Resolved(nil)
		assert.True(t, f.IsComplete())
		assert.NoError(t, f.Await())
	})

	t.Run("carries error", func(t *testing.T) {
		wantErr := errors.New("skipped")
		assert.ErrorIs(t, async.Resolved(wantErr).Await(), wantErr)
	})
}

func TestJoin(t *testing.T) {
	t.Run("waits for all futures", func(t *testing.T) {
		a := async.Exec(context.Background(), func(ctx context.Context) error { return nil })
		b := async.Resolved(nil)
		assert.NoError(t, async.Join(a, b))
	})

	t.Run("returns first error in argument order", func(t *testing.T) {
		errA := errors.New("a failed")
		errB := errors.New("b failed")
		a := async.Resolved(errA)
		b := async.Resolved(errB)
		assert.ErrorIs(t, async.Join(a, b), errA)
	})

	t.Run("no futures", func(t *testing.T) {
		assert.NoError(t, async.Join())
	})
}
