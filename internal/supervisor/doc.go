// Package supervisor wires the ingestion pipeline's components together
// and owns their startup and shutdown ordering.
//
// Start order: store, queue, batch writer, stream ingest, config watcher,
// operator command reader. Shutdown reverses this: the stream ingest's
// own cancel scope, separate from the process context, is cancelled first so it stops enqueueing new
// trades, then the queue is closed, then the batch writer is given its
// grace period to drain and flush whatever is left, then the store pool is
// closed.
package supervisor
