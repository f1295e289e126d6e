// Package corpus provides SQLite-backed storage for mismatching inputs.
//
// A corpus remembers every input pair on which a property check disagreed
// with its reference model, so later runs can replay those pairs before
// generating new ones. It is optional; the harness itself keeps no state.
//
// # Tables
//
//   - runs: one row per recorded run (UUIDv7 id, kind, seed, trials)
//   - mismatches: one row per distinct failing input pair
//
// Rows are ordered by their autoincrement seq, never by wall time, so
// replayed pairs come back in the order they were first found.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package corpus
