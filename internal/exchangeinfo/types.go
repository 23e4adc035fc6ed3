package exchangeinfo

// ExchangeInfoResponse is the relevant subset of GET /api/v3/exchangeInfo.
type ExchangeInfoResponse struct {
	Symbols []SymbolInfo `json:"symbols"`
}

// SymbolInfo describes one trading pair as Binance reports it.
type SymbolInfo struct {
	Symbol     string `json:"symbol"`
	Status     string `json:"status"`
	BaseAsset  string `json:"baseAsset"`
	QuoteAsset string `json:"quoteAsset"`
}

// StatusTrading is the Status value of a symbol currently open for trading.
const StatusTrading = "TRADING"
