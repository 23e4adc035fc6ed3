// Package exchangeinfo provides a client for Binance's public exchangeInfo
// REST endpoint, used to resolve which symbols are currently tradeable.
//
// Endpoint: GET https://api.binance.com/api/v3/exchangeInfo
//
// The endpoint requires no authentication; requests are retried with
// exponential backoff and jitter on 5xx and 429 responses.
package exchangeinfo
