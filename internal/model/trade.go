package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade is an immutable record of one executed market transaction.
//
// ID is a reserved surrogate key. Nothing in the pipeline sets it and the
// store does not persist it, so it is always zero.
type Trade struct {
	Symbol    string          // uppercase ASCII alphanumeric, 4-20 chars
	Price     decimal.Decimal // non-negative
	Quantity  decimal.Decimal // non-negative
	TradeID   int64           // unique per Symbol, non-negative
	TradeTime time.Time       // UTC, millisecond resolution
	ID        int64           // reserved surrogate, always 0 in flight
}

// Equal reports whether two trades describe the same execution, comparing
// decimals by value rather than by internal representation.
func (t Trade) Equal(o Trade) bool {
	return t.Symbol == o.Symbol &&
		t.Price.Equal(o.Price) &&
		t.Quantity.Equal(o.Quantity) &&
		t.TradeID == o.TradeID &&
		t.TradeTime.Equal(o.TradeTime)
}
