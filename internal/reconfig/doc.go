// Package reconfig holds the active symbol set and notifies the stream
// ingest loop when it changes, without requiring a full process restart.
package reconfig
