// Package metrics provides Prometheus metrics for monitoring.
//
// Key metrics:
//   - Upstream stream connection state and reconnect count
//   - Batch flush outcome, duration, and row counts
//   - Bounded queue depth and capacity
//
// The stream connection and reconnect collectors change only through
// SetStreamConnected and ObserveReconnect. The stream ingest loop does not
// call them; it reports reconnects through stats.Counter instead.
package metrics
