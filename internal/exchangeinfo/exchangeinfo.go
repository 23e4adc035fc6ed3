package exchangeinfo

import "context"

// FetchTradingSymbols returns the set of symbols currently in TRADING
// status, keyed by symbol for O(1) membership checks.
func (c *Client) FetchTradingSymbols(ctx context.Context) (map[string]struct{}, error) {
	var resp ExchangeInfoResponse
	if err := c.get(ctx, "/api/v3/exchangeInfo", nil, &resp); err != nil {
		return nil, err
	}

	trading := make(map[string]struct{}, len(resp.Symbols))
	for _, s := range resp.Symbols {
		if s.Status == StatusTrading {
			trading[s.Symbol] = struct{}{}
		}
	}
	return trading, nil
}
