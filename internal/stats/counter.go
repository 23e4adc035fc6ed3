package stats

import "sync/atomic"

// Counter holds lifetime ingestion totals. The zero value is ready to use.
// All methods are safe for concurrent use; reads never block writers.
type Counter struct {
	inserted  atomic.Int64
	conflicts atomic.Int64
	errors    atomic.Int64
	reconnects atomic.Int64
}

// AddBatch records the outcome of one committed batch. It is called once
// per flush, not once per trade.
func (c *Counter) AddBatch(inserted, conflicts int) {
	c.inserted.Add(int64(inserted))
	c.conflicts.Add(int64(conflicts))
}

// AddError records one failed flush attempt.
func (c *Counter) AddError() {
	c.errors.Add(1)
}

// AddReconnect records one upstream reconnect cycle.
func (c *Counter) AddReconnect() {
	c.reconnects.Add(1)
}

// Snapshot is a point-in-time read of the lifetime counters.
type Snapshot struct {
	Inserted   int64
	Conflicts  int64
	Errors     int64
	Reconnects int64
}

// Snapshot returns the current totals without taking a lock.
func (c *Counter) Snapshot() Snapshot {
	return Snapshot{
		Inserted:   c.inserted.Load(),
		Conflicts:  c.conflicts.Load(),
		Errors:     c.errors.Load(),
		Reconnects: c.reconnects.Load(),
	}
}
