package stream

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseTrade_CombinedStreamEnvelope(t *testing.T) {
	raw := []byte(`{"stream":"btcusdt@trade","data":{"e":"trade","s":"BTCUSDT","p":"43250.50","q":"0.01200","t":123456789,"T":1700000000000}}`)

	trade, err := ParseTrade(raw, 4, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trade.Symbol != "BTCUSDT" {
		t.Errorf("Symbol = %q, want BTCUSDT", trade.Symbol)
	}
	if trade.TradeID != 123456789 {
		t.Errorf("TradeID = %d, want 123456789", trade.TradeID)
	}
	if !trade.Price.Equal(decimal.RequireFromString("43250.50")) {
		t.Errorf("Price = %s, want 43250.50", trade.Price)
	}
}

func TestParseTrade_BareEvent(t *testing.T) {
	raw := []byte(`{"e":"trade","s":"ethusdt","p":"2200.00","q":"1.5","t":1,"T":1700000000000}`)

	trade, err := ParseTrade(raw, 4, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trade.Symbol != "ETHUSDT" {
		t.Errorf("Symbol = %q, want ETHUSDT (uppercased)", trade.Symbol)
	}
}

func TestParseTrade_RejectsWrongEventType(t *testing.T) {
	raw := []byte(`{"e":"depthUpdate","s":"BTCUSDT","p":"1","q":"1","t":1,"T":1}`)
	if _, err := ParseTrade(raw, 4, 20); err == nil {
		t.Fatal("expected error for non-trade event type")
	}
}

func TestParseTrade_RejectsInvalidPrice(t *testing.T) {
	raw := []byte(`{"e":"trade","s":"BTCUSDT","p":"not-a-number","q":"1","t":1,"T":1}`)
	if _, err := ParseTrade(raw, 4, 20); err == nil {
		t.Fatal("expected error for invalid price")
	}
}

func TestParseTrade_RejectsBadSymbolFormat(t *testing.T) {
	raw := []byte(`{"e":"trade","s":"BT","p":"1","q":"1","t":1,"T":1}`)
	if _, err := ParseTrade(raw, 4, 20); err == nil {
		t.Fatal("expected error for too-short symbol")
	}
}

func TestParseTrade_MissingTradeTimeDefaultsToNow(t *testing.T) {
	raw := []byte(`{"e":"trade","s":"BTCUSDT","p":"1","q":"1","t":1}`)

	before := time.Now().UTC()
	trade, err := ParseTrade(raw, 4, 20)
	after := time.Now().UTC()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if trade.TradeTime.Before(before) || trade.TradeTime.After(after) {
		t.Errorf("TradeTime = %s, want between %s and %s", trade.TradeTime, before, after)
	}
}
