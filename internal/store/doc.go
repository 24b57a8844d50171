// Package store reads and rewrites systems-config.json.
//
// A Store is loaded once, modified in memory and saved back by the caller.
// Only the "systems" member is rewritten; every other top-level member keeps
// its position and value.
//
// # Ordering
//
// Systems are sorted by id using Unicode root collation, the same order a
// locale-aware string comparison produces. Sorting is stable.
//
// # Serialization
//
//   - Two-space indentation, trailing newline
//   - No HTML escaping of <, > and &
//   - Records keep their source key order and unknown keys
//
// Concurrent writers are not guarded against; the last Save wins.
package store
