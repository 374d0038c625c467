// Package store provides SQLite-backed storage for generation runs.
//
// A run is one invocation of a generating command. It records the locale,
// the seed (when one was set) and the command line, and owns an ordered list
// of samples: the expression that was requested and the value produced.
// Replaying a seeded run with the same dictionary reproduces its samples.
//
// # Ordering
//
// Runs carry a seq assigned at insertion. Listings use ORDER BY seq, never
// wall-clock time; samples are ordered by their index within the run.
//
// # Idempotency
//
// WriteRun ignores a run whose ID already exists, so retrying a write
// never duplicates samples.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
