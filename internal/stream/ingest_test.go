package stream

import (
	"net/url"
	"testing"
)

func TestBuildStreamURL(t *testing.T) {
	got, err := buildStreamURL("wss://stream.binance.com:9443", []string{"BTCUSDT", "ETHUSDT"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("buildStreamURL produced an unparseable URL: %v", err)
	}
	if u.Path != "/stream" {
		t.Errorf("Path = %q, want /stream", u.Path)
	}
	if got := u.Query().Get("streams"); got != "btcusdt@trade/ethusdt@trade" {
		t.Errorf("streams = %q, want %q", got, "btcusdt@trade/ethusdt@trade")
	}
}

func TestBuildStreamURL_InvalidBase(t *testing.T) {
	if _, err := buildStreamURL("://bad-url", []string{"BTCUSDT"}); err == nil {
		t.Fatal("expected error for invalid base url")
	}
}
