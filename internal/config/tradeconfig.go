package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// TradeConfig is the hot-reloadable subset of configuration: the
// subscribed symbol set, the store connection string, and the batch size.
// It is read from a small JSON file that the operator is expected to edit
// directly while the process is running. On a reload only Symbols takes
// effect; Postgres and BatchSize are read once at startup.
type TradeConfig struct {
	Symbols   []string `json:"symbols"`
	Postgres  string   `json:"postgres"`
	BatchSize int      `json:"batch_size"`
}

// LoadTradeConfig reads path, expanding ${VAR} environment references
// before parsing so the Postgres field can hold a placeholder like
// "${DATABASE_URL}" instead of a literal connection string.
func LoadTradeConfig(path string) (*TradeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trade config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg TradeConfig
	if err := json.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse trade config json: %w", err)
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = DefaultBatchSize
	}

	return &cfg, nil
}

// Validate checks the fields required for the process to start. A missing
// connection string is a fatal startup error; symbols are validated
// separately by internal/symbols since malformed entries are filtered, not
// rejected outright.
func (c *TradeConfig) Validate() error {
	if c.Postgres == "" {
		return errors.New("postgres connection string is required")
	}
	if c.BatchSize < 1 {
		return errors.New("batch_size must be >= 1")
	}
	return nil
}
