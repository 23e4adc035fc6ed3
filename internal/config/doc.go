// Package config loads the two configuration surfaces the ingestor reads at
// startup and at runtime.
//
// ServiceConfig is a YAML file read once at process start; it supports
// ${VAR} environment variable interpolation the same way the rest of this
// codebase expects secrets to reach it. TradeConfig is a small JSON file
// that the operator is expected to hand-edit while the process is running
// (it holds the subscribed symbol set and the batch size); a Watcher follows
// it with fsnotify and feeds every valid reload to a callback.
package config
