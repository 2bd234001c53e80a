// Package store provides SQLite-backed archival of simulator logs and a
// history of rendered charts.
//
// The store holds:
//   - Log tables: a loaded logtable.LogTable under a name, with its source
//     path and content digest
//   - Artifacts: one record per rendered chart, keyed by run ID and seq
//
// # Ordering
//
// Queries order by name (tables) or by run_id then seq (artifacts), never by
// insertion time, so listings are identical across reopenings.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Rows are deleted with their table
package store
