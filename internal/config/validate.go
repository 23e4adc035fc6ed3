package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *ServiceConfig) Validate() error {
	if c.Instance.ID == "" {
		return errors.New("instance.id is required")
	}

	if c.Postgres.MaxConns < 1 {
		return errors.New("postgres.max_conns must be >= 1")
	}
	if c.Postgres.MinConns < 0 {
		return errors.New("postgres.min_conns must be >= 0")
	}
	if c.Postgres.MinConns > c.Postgres.MaxConns {
		return fmt.Errorf("postgres.min_conns (%d) cannot exceed max_conns (%d)", c.Postgres.MinConns, c.Postgres.MaxConns)
	}

	if c.Queue.Capacity < 1 {
		return errors.New("queue.capacity must be >= 1")
	}

	if c.Symbols.MinLenIngress < 1 {
		return errors.New("symbols.min_len_ingress must be >= 1")
	}
	if c.Symbols.MaxLenIngress < c.Symbols.MinLenIngress {
		return errors.New("symbols.max_len_ingress must be >= min_len_ingress")
	}
	if c.Symbols.MinLenConfig < 1 {
		return errors.New("symbols.min_len_config must be >= 1")
	}
	if c.Symbols.MaxLenConfig < c.Symbols.MinLenConfig {
		return errors.New("symbols.max_len_config must be >= min_len_config")
	}

	if c.Metrics.Port < 1 || c.Metrics.Port > 65535 {
		return fmt.Errorf("metrics.port must be between 1 and 65535, got %d", c.Metrics.Port)
	}

	if c.TradeConfigPath == "" {
		return errors.New("trade_config_path is required")
	}

	return nil
}
