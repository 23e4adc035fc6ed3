package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTrade_Equal(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)

	a := Trade{
		Symbol:    "BTCUSDT",
		Price:     decimal.RequireFromString("100.50"),
		Quantity:  decimal.RequireFromString("0.10"),
		TradeID:   1,
		TradeTime: now,
	}
	b := Trade{
		Symbol:    "BTCUSDT",
		Price:     decimal.RequireFromString("100.5000"), // same value, different scale
		Quantity:  decimal.RequireFromString("0.10"),
		TradeID:   1,
		TradeTime: now,
	}

	if !a.Equal(b) {
		t.Errorf("expected a.Equal(b) with differing decimal scale, got false")
	}

	c := b
	c.TradeID = 2
	if a.Equal(c) {
		t.Errorf("expected a.Equal(c) to be false when trade ids differ")
	}
}

func TestTrade_IDReservedAtZero(t *testing.T) {
	tr := Trade{Symbol: "ETHUSDT", TradeID: 5}
	if tr.ID != 0 {
		t.Errorf("ID = %d, want 0 for an in-flight trade", tr.ID)
	}
}
