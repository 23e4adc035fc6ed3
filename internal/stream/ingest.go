package stream

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/rickgao/trade-ingest/internal/model"
	"github.com/rickgao/trade-ingest/internal/queue"
	"github.com/rickgao/trade-ingest/internal/stats"
)

const defaultStreamBaseURL = "wss://stream.binance.com:9443"

// SymbolSource supplies the currently active symbol set and notifies Ingest
// when it changes. internal/reconfig.Controller satisfies this.
type SymbolSource interface {
	Symbols() []string
	Changed() <-chan struct{}
}

// Ingest owns the reconnect loop against Binance's combined trade stream.
type Ingest struct {
	cfg     IngestConfig
	baseURL string
	source  SymbolSource
	output  *queue.BoundedQueue[model.Trade]
	counter *stats.Counter
	logger  *slog.Logger
}

// New creates an Ingest. baseURL empty defaults to Binance's production
// stream host.
func New(cfg IngestConfig, baseURL string, source SymbolSource, output *queue.BoundedQueue[model.Trade], counter *stats.Counter, logger *slog.Logger) *Ingest {
	if baseURL == "" {
		baseURL = defaultStreamBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingest{
		cfg:     cfg,
		baseURL: baseURL,
		source:  source,
		output:  output,
		counter: counter,
		logger:  logger,
	}
}

// Run drives connect/reconnect cycles until ctx is canceled. Each connection
// attempt runs under its own cancelable scope so a symbol-set change can
// tear down just that connection without affecting the process context.
func (ig *Ingest) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		symbols := ig.source.Symbols()
		if len(symbols) == 0 {
			ig.logger.Warn("no symbols configured, waiting before retry")
			if !ig.wait(ctx) {
				return
			}
			continue
		}

		streamURL, err := buildStreamURL(ig.baseURL, symbols)
		if err != nil {
			ig.logger.Error("failed to build stream url", "error", err)
			if !ig.wait(ctx) {
				return
			}
			continue
		}

		connCtx, cancel := context.WithCancel(ctx)
		changeWatcherDone := make(chan struct{})
		go func() {
			defer close(changeWatcherDone)
			select {
			case <-ig.source.Changed():
				ig.logger.Info("symbol set changed, tearing down connection")
				cancel()
			case <-connCtx.Done():
			}
		}()

		clientCfg := ig.cfg.ClientConfig
		clientCfg.URL = streamURL
		err = ig.runConnection(connCtx, clientCfg)

		cancel()
		<-changeWatcherDone

		if ctx.Err() != nil {
			return
		}

		if err != nil {
			ig.logger.Warn("stream connection ended", "error", err)
		}
		if ig.counter != nil {
			ig.counter.AddReconnect()
		}
		if !ig.wait(ctx) {
			return
		}
	}
}

func (ig *Ingest) wait(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(ig.cfg.ReconnectWait):
		return true
	}
}

// runConnection connects once and pumps parsed trades into the output queue
// until the connection errors or ctx is canceled.
func (ig *Ingest) runConnection(ctx context.Context, cfg ClientConfig) error {
	c := NewClient(cfg, ig.logger)
	if err := c.Connect(ctx); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer c.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-c.Errors():
			return err
		case msg, ok := <-c.Messages():
			if !ok {
				return nil
			}
			trade, err := ParseTrade(msg.Data, ig.cfg.SymbolMinLen, ig.cfg.SymbolMaxLen)
			if err != nil {
				ig.logger.Warn("dropping unparseable trade frame", "error", err)
				continue
			}
			if !ig.output.Offer(trade) {
				// Output queue closed; nothing more to do on this connection.
				return nil
			}
		}
	}
}

// buildStreamURL constructs a combined-stream subscription URL for symbols,
// e.g. wss://stream.binance.com:9443/stream?streams=btcusdt@trade/ethusdt@trade.
func buildStreamURL(baseURL string, symbols []string) (string, error) {
	streams := make([]string, len(symbols))
	for i, s := range symbols {
		streams[i] = strings.ToLower(s) + "@trade"
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	u.Path = "/stream"
	q := u.Query()
	q.Set("streams", strings.Join(streams, "/"))
	u.RawQuery = q.Encode()

	return u.String(), nil
}
