// Package sqlite provides a SQLite-backed implementation of driven.HistoryStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files; only the .up.sql files are applied.
//
// Parse results are stored as JSON in the same shape the CLI prints with
// --format json, so a stored row can be read without this package.
//
// # Data Location
//
// By default, the database is stored at ~/.larder/data/history.db
//
// # Thread Safety
//
// All operations are thread-safe. The store relies on SQLite's own locking
// in WAL mode.
package sqlite
