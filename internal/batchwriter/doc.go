// Package batchwriter drains parsed trades from the queue and commits them
// to the store in batches.
//
// A batch flushes when it reaches the configured size, or when the
// configured max latency elapses since the first trade of the open batch was
// taken off the queue, whichever comes first. Exactly one goroutine calls SaveBatch at a
// time.
package batchwriter
