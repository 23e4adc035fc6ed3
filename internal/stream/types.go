package stream

import (
	"errors"
	"time"

	"github.com/rickgao/trade-ingest/internal/symbols"
)

// Errors
var (
	ErrNotConnected    = errors.New("not connected")
	ErrStaleConnection = errors.New("connection stale (no ping)")
	ErrAlreadyClosed   = errors.New("already closed")
)

// TimestampedMessage wraps raw message data with a receive timestamp.
type TimestampedMessage struct {
	Data       []byte    // Raw message bytes from the WebSocket
	ReceivedAt time.Time // Local timestamp when ReadMessage() returned
}

// ClientConfig configures a single low-level WebSocket connection.
type ClientConfig struct {
	URL            string        // wss://stream.binance.com:9443/stream?streams=...
	PingInterval   time.Duration // How often the heartbeat loop checks for staleness
	PingTimeout    time.Duration // Max time without ping/pong before the connection is stale
	WriteTimeout   time.Duration // Not read by the client; pong and close frames use a one-second write deadline
	ReadBufferSize int           // Per-message read buffer, Binance frames run small
	BufferSize     int           // Message channel buffer size
}

// DefaultClientConfig returns sensible defaults for a Binance trade stream.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		PingInterval:   10 * time.Second,
		PingTimeout:    60 * time.Second,
		WriteTimeout:   5 * time.Second,
		ReadBufferSize: 8 * 1024,
		BufferSize:     4096,
	}
}

// IngestConfig configures the reconnecting ingest loop.
type IngestConfig struct {
	ClientConfig
	// ReconnectWait is the fixed back-off between reconnect attempts.
	ReconnectWait time.Duration
	// SymbolMinLen and SymbolMaxLen bound the format check applied to the
	// symbol Binance itself reports in each trade frame.
	SymbolMinLen int
	SymbolMaxLen int
}

// DefaultIngestConfig returns sensible defaults for the reconnect loop.
func DefaultIngestConfig() IngestConfig {
	return IngestConfig{
		ClientConfig:  DefaultClientConfig(),
		ReconnectWait: 5 * time.Second,
		SymbolMinLen:  symbols.DefaultMinLenIngress,
		SymbolMaxLen:  symbols.DefaultMaxLenIngress,
	}
}
