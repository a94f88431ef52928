// Package async provides lightweight futures for fire-and-forget work.
//
// It exists for mirror calls: local state mutations that opportunistically
// push a copy of the change to a remote service without blocking the caller
// and without the caller caring about the outcome. The returned Future can be
// ignored entirely, or awaited when a caller (typically a test) needs to
// observe completion.
//
// Basic usage:
//
//	f := async.Exec(ctx, func(ctx context.Context) error {
//		return api.PushChange(ctx, change)
//	})
//
//	// Later, optionally:
//	if err := f.Await(); err != nil {
//		log.Printf("push failed: %v", err)
//	}
//
// Resolved returns an already-completed Future, which keeps call sites uniform
// when the asynchronous branch is skipped:
//
//	if !authenticated {
//		return async.Resolved(nil)
//	}
package async
