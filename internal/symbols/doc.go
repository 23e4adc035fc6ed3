// Package symbols validates and resolves the configured trading symbol set.
//
// Resolution happens in two stages: a cheap format check (uppercase
// alphanumeric, within a length bound) followed by a lookup against
// Binance's recognized-symbol set, cached for 10 minutes and keyed by the
// sorted input set. If the reference endpoint cannot be reached, the
// resolver degrades to format-only validation rather than blocking startup.
package symbols
