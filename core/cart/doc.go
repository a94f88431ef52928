// Package cart owns the local shopping cart: an ordered sequence of line
// entries keyed by product id, persisted to the "cart-storage" record on
// every mutation.
//
// The policy is local-first, remote-best-effort. Mutations apply to local
// state synchronously and are immediately observable; when the session is
// authenticated, a mirror call pushes the change to the server without
// blocking the caller. Mirror failures are logged and never revert the local
// mutation — local state is authoritative for the lifetime of the session.
// Mutators return an async.Future that callers are free to ignore; tests
// await it to observe mirror completion.
//
// Sync is the one operation where server state wins: it replaces the local
// cart wholesale with the server's contents. It is not wired into the login
// flow automatically, and the cart is deliberately not cleared on logout —
// the cart record outlives identity changes, and reconciling it after login
// is the embedding application's call.
//
// Line entries snapshot the product record and its unit price at add time.
// Adding an existing product again increments quantity and keeps the original
// price; the snapshot is never refreshed before checkout.
package cart
