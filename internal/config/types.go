package config

import "time"

// ServiceConfig is the root configuration for an ingestor instance.
type ServiceConfig struct {
	Instance InstanceConfig `yaml:"instance"`
	Postgres PostgresConfig `yaml:"postgres"`
	Stream   StreamConfig   `yaml:"stream"`
	Queue    QueueConfig    `yaml:"queue"`
	Writer   WriterConfig   `yaml:"writer"`
	Symbols  SymbolsConfig  `yaml:"symbols"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	LogLevel string         `yaml:"log_level"`

	// TradeConfigPath points at the hot-reloadable JSON file holding the
	// subscribed symbol set and batch size (see TradeConfig).
	TradeConfigPath string `yaml:"trade_config_path"`
}

// InstanceConfig identifies this ingestor instance.
type InstanceConfig struct {
	ID string `yaml:"id"`
}

// PostgresConfig holds the connection pool sizing for the store. The DSN
// itself lives in TradeConfig.Postgres, not here, since the spec treats the
// connection string as part of the hot-reloadable file rather than the
// static service config.
type PostgresConfig struct {
	MinConns int32 `yaml:"min_conns"`
	MaxConns int32 `yaml:"max_conns"`
}

// StreamConfig holds upstream exchange connection settings.
type StreamConfig struct {
	BaseURL          string        `yaml:"base_url"`
	ExchangeInfoURL  string        `yaml:"exchange_info_url"`
	HeartbeatTimeout time.Duration `yaml:"heartbeat_timeout"`
	ReconnectWait    time.Duration `yaml:"reconnect_wait"`
	PingInterval     time.Duration `yaml:"ping_interval"`
	ReadBufferSize   int           `yaml:"read_buffer_size"`
}

// QueueConfig holds the bounded handoff queue's capacity.
type QueueConfig struct {
	Capacity int `yaml:"capacity"`
}

// WriterConfig holds batching policy for the batch writer.
type WriterConfig struct {
	MaxLatency    time.Duration `yaml:"max_latency"`
	TickInterval  time.Duration `yaml:"tick_interval"`
	ShutdownGrace time.Duration `yaml:"shutdown_grace"`
}

// SymbolsConfig holds format-validation bounds for the symbol resolver and
// the stream parser. CacheTTL is not passed to the resolver, whose
// recognized-set cache uses a fixed 10-minute TTL.
type SymbolsConfig struct {
	MinLenIngress int           `yaml:"min_len_ingress"`
	MaxLenIngress int           `yaml:"max_len_ingress"`
	MinLenConfig  int           `yaml:"min_len_config"`
	MaxLenConfig  int           `yaml:"max_len_config"`
	CacheTTL      time.Duration `yaml:"cache_ttl"`
}

// MetricsConfig holds Prometheus metrics exposition settings.
type MetricsConfig struct {
	Port int    `yaml:"port"`
	Path string `yaml:"path"`
}
