// Package session owns the authenticated identity and its credential pair.
//
// A Manager holds the current Session (user profile, access token, refresh
// token), persists it to the "auth-storage" record on every mutation, and
// rehydrates it via InitAuth at process start. It implements the client
// package's TokenSource and Refresher interfaces, so wiring it into an
// AuthTransport gives every outgoing request the current bearer token and
// transparent refresh-on-401.
//
// State machine: anonymous → (Login|Register success) → authenticated →
// (Logout | refresh failure) → anonymous. Credential failures store a
// human-readable message retrievable via LastError; they never leave the
// manager authenticated.
package session
