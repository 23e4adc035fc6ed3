// Package stats tracks lifetime ingestion counters with lock-free reads.
//
// The counters are updated in batch-sized increments by the batch writer,
// not per trade, and are read by the operator command reader and by the
// /health handler in cmd/ingestor.
package stats
