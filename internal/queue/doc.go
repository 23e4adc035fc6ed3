// Package queue implements the bounded handoff between the upstream parser
// and the batch writer.
//
// Unlike a channel, BoundedQueue exposes Drain, which removes a whole run of
// items in one call so the batch writer never pays per-item lock overhead
// when forming a batch.
package queue
