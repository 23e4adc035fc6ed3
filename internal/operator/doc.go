// Package operator reads single-key operator commands from stdin.
//
// Currently one command is recognized: space prints the lifetime ingestion
// counters to the log.
package operator
