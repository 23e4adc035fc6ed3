// Package model defines the shared value types that flow through the
// ingestion pipeline, from the upstream parser down to the store writer.
//
// Conventions:
//   - Prices and quantities: fixed-point decimals (github.com/shopspring/decimal)
//   - Timestamps: UTC, millisecond resolution
//   - Symbols: uppercase ASCII alphanumeric
package model
