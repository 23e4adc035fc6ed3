package stream

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rickgao/trade-ingest/internal/model"
	"github.com/rickgao/trade-ingest/internal/symbols"
)

// combinedStreamEnvelope wraps a single event from a combined stream
// subscription: {"stream":"btcusdt@trade","data":{...}}.
type combinedStreamEnvelope struct {
	Stream string          `json:"stream"`
	Data   json.RawMessage `json:"data"`
}

// rawTradeEvent is Binance's trade event payload. Field names match the
// wire protocol's single-letter keys.
type rawTradeEvent struct {
	EventType string `json:"e"`
	Symbol    string `json:"s"`
	Price     string `json:"p"`
	Quantity  string `json:"q"`
	TradeID   int64  `json:"t"`
	TradeTime int64  `json:"T"`
}

const tradeEventType = "trade"

// ParseTrade decodes one raw WebSocket frame into a Trade. Frames may
// arrive either wrapped in a combined-stream envelope or, for a single-symbol
// subscription, as a bare trade event. symbolMinLen/symbolMaxLen bound the
// format check applied to the frame's own symbol field.
func ParseTrade(raw []byte, symbolMinLen, symbolMaxLen int) (model.Trade, error) {
	payload := raw

	var envelope combinedStreamEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 {
		payload = envelope.Data
	}

	var event rawTradeEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return model.Trade{}, fmt.Errorf("unmarshal trade event: %w", err)
	}

	if event.EventType != tradeEventType {
		return model.Trade{}, fmt.Errorf("unexpected event type %q, want %q", event.EventType, tradeEventType)
	}

	symbol := strings.ToUpper(event.Symbol)
	if err := symbols.ValidateFormat(symbol, symbolMinLen, symbolMaxLen); err != nil {
		return model.Trade{}, fmt.Errorf("invalid symbol in trade event: %w", err)
	}

	price, err := decimal.NewFromString(event.Price)
	if err != nil {
		return model.Trade{}, fmt.Errorf("parse price: %w", err)
	}
	if price.IsNegative() {
		return model.Trade{}, fmt.Errorf("negative price %s", event.Price)
	}

	quantity, err := decimal.NewFromString(event.Quantity)
	if err != nil {
		return model.Trade{}, fmt.Errorf("parse quantity: %w", err)
	}
	if quantity.IsNegative() {
		return model.Trade{}, fmt.Errorf("negative quantity %s", event.Quantity)
	}

	if event.TradeID < 0 {
		return model.Trade{}, fmt.Errorf("negative trade id %d", event.TradeID)
	}

	tradeTime := time.Now().UTC()
	if event.TradeTime != 0 {
		tradeTime = time.UnixMilli(event.TradeTime).UTC()
	}

	return model.Trade{
		Symbol:    symbol,
		Price:     price,
		Quantity:  quantity,
		TradeID:   event.TradeID,
		TradeTime: tradeTime,
	}, nil
}
