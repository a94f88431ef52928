// Package state persists named client state records across process restarts.
//
// The storefront keeps two records: "auth-storage" (session credentials) and
// "cart-storage" (cart line entries). Each record is rewritten in full on
// every mutation, last write wins. Records are wrapped in a versioned
// envelope so the on-disk schema can evolve; loading a record written with an
// unknown schema version fails with ErrVersionMismatch instead of silently
// misreading it.
//
// Three backends are provided:
//
//   - FileStore: one JSON file per record under a state directory, written
//     atomically via temp file + rename. The default for desktop/CLI use,
//     filling the role browser localStorage plays for the web client.
//   - MemoryStore: in-process map, for tests and ephemeral sessions.
//   - RedisStore: go-redis backed, for kiosk or shared-device deployments
//     where state must outlive the local machine.
package state
