// Package store persists committed trade batches to PostgreSQL.
//
// A single connection pool is held for the process lifetime. Each call to
// SaveBatch opens one transaction and issues one array-expansion INSERT, so
// that a batch is committed or rolled back as a unit and duplicate trade ids
// are silently absorbed by the primary key.
package store
