// Package stream maintains the live WebSocket connection to Binance's
// combined trade stream and parses incoming trade events.
//
// Ingest.Run owns the reconnect loop: each connection attempt gets its own
// cancelable scope, separate from the process-level context, so a symbol-set
// change can tear down and rebuild the connection without stopping the
// service.
package stream
