package exchangeinfo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("https://api.example.com")
	if c.baseURL != "https://api.example.com" {
		t.Errorf("baseURL = %q, want %q", c.baseURL, "https://api.example.com")
	}
	if c.maxRetries != 3 {
		t.Errorf("maxRetries = %d, want 3", c.maxRetries)
	}
	if c.retryBackoff != time.Second {
		t.Errorf("retryBackoff = %v, want 1s", c.retryBackoff)
	}
}

func TestNewClient_EmptyBaseURLDefaultsToBinance(t *testing.T) {
	c := NewClient("")
	if c.baseURL != defaultBaseURL {
		t.Errorf("baseURL = %q, want %q", c.baseURL, defaultBaseURL)
	}
}

func TestAPIError_IsRetryable(t *testing.T) {
	tests := []struct {
		code     int
		expected bool
	}{
		{500, true},
		{503, true},
		{429, true},
		{400, false},
		{404, false},
	}
	for _, tt := range tests {
		err := &APIError{StatusCode: tt.code}
		if got := err.IsRetryable(); got != tt.expected {
			t.Errorf("IsRetryable() for %d = %v, want %v", tt.code, got, tt.expected)
		}
	}
}

func TestFetchTradingSymbols(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/exchangeInfo" {
			t.Errorf("path = %q, want /api/v3/exchangeInfo", r.URL.Path)
		}
		json.NewEncoder(w).Encode(ExchangeInfoResponse{
			Symbols: []SymbolInfo{
				{Symbol: "BTCUSDT", Status: "TRADING"},
				{Symbol: "ETHUSDT", Status: "TRADING"},
				{Symbol: "DELISTEDCOIN", Status: "BREAK"},
			},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	symbols, err := c.FetchTradingSymbols(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(symbols) != 2 {
		t.Fatalf("len(symbols) = %d, want 2", len(symbols))
	}
	if _, ok := symbols["BTCUSDT"]; !ok {
		t.Error("expected BTCUSDT in trading set")
	}
	if _, ok := symbols["DELISTEDCOIN"]; ok {
		t.Error("DELISTEDCOIN should be excluded (status BREAK)")
	}
}

func TestFetchTradingSymbols_RetriesOn5xx(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&attempts, 1)
		if n < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(ExchangeInfoResponse{
			Symbols: []SymbolInfo{{Symbol: "BTCUSDT", Status: "TRADING"}},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, WithRetries(3, 5*time.Millisecond))
	symbols, err := c.FetchTradingSymbols(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(symbols) != 1 {
		t.Fatalf("len(symbols) = %d, want 1", len(symbols))
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestFetchTradingSymbols_GivesUpAfterMaxRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewClient(server.URL, WithRetries(1, time.Millisecond))
	_, err := c.FetchTradingSymbols(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
