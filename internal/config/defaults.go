package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultStreamBaseURL         = "wss://stream.binance.com:9443"
	DefaultExchangeInfoURL       = "https://api.binance.com"
	DefaultHeartbeatTimeout      = 60 * time.Second
	DefaultReconnectWait         = 5 * time.Second
	DefaultPingInterval          = 10 * time.Second
	DefaultReadBufferSize        = 8 * 1024
	DefaultQueueCapacity         = 50000
	DefaultWriterMaxLatency      = 1 * time.Second
	DefaultWriterTickInterval    = 100 * time.Millisecond
	DefaultWriterShutdownGrace   = 10 * time.Second
	DefaultMinLenIngress         = 4
	DefaultMaxLenIngress         = 20
	DefaultMinLenConfig          = 4
	DefaultMaxLenConfig          = 12
	DefaultSymbolCacheTTL        = 10 * time.Minute
	DefaultMaxConns              = 10
	DefaultMinConns              = 2
	DefaultMetricsPort           = 9090
	DefaultMetricsPath           = "/metrics"
	DefaultLogLevel              = "info"
	DefaultTradeConfigPath       = "trade.json"
	DefaultBatchSize             = 100
)

func (c *ServiceConfig) applyDefaults() {
	if c.Stream.BaseURL == "" {
		c.Stream.BaseURL = DefaultStreamBaseURL
	}
	if c.Stream.ExchangeInfoURL == "" {
		c.Stream.ExchangeInfoURL = DefaultExchangeInfoURL
	}
	if c.Stream.HeartbeatTimeout == 0 {
		c.Stream.HeartbeatTimeout = DefaultHeartbeatTimeout
	}
	if c.Stream.ReconnectWait == 0 {
		c.Stream.ReconnectWait = DefaultReconnectWait
	}
	if c.Stream.PingInterval == 0 {
		c.Stream.PingInterval = DefaultPingInterval
	}
	if c.Stream.ReadBufferSize == 0 {
		c.Stream.ReadBufferSize = DefaultReadBufferSize
	}

	if c.Queue.Capacity == 0 {
		c.Queue.Capacity = DefaultQueueCapacity
	}

	if c.Writer.MaxLatency == 0 {
		c.Writer.MaxLatency = DefaultWriterMaxLatency
	}
	if c.Writer.TickInterval == 0 {
		c.Writer.TickInterval = DefaultWriterTickInterval
	}
	if c.Writer.ShutdownGrace == 0 {
		c.Writer.ShutdownGrace = DefaultWriterShutdownGrace
	}

	if c.Symbols.MinLenIngress == 0 {
		c.Symbols.MinLenIngress = DefaultMinLenIngress
	}
	if c.Symbols.MaxLenIngress == 0 {
		c.Symbols.MaxLenIngress = DefaultMaxLenIngress
	}
	if c.Symbols.MinLenConfig == 0 {
		c.Symbols.MinLenConfig = DefaultMinLenConfig
	}
	if c.Symbols.MaxLenConfig == 0 {
		c.Symbols.MaxLenConfig = DefaultMaxLenConfig
	}
	if c.Symbols.CacheTTL == 0 {
		c.Symbols.CacheTTL = DefaultSymbolCacheTTL
	}

	if c.Postgres.MaxConns == 0 {
		c.Postgres.MaxConns = DefaultMaxConns
	}
	if c.Postgres.MinConns == 0 {
		c.Postgres.MinConns = DefaultMinConns
	}

	if c.Metrics.Port == 0 {
		c.Metrics.Port = DefaultMetricsPort
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}

	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.TradeConfigPath == "" {
		c.TradeConfigPath = DefaultTradeConfigPath
	}
}
