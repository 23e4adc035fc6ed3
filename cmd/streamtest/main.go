// streamtest connects directly to Binance's combined trade stream and
// prints parsed trades to the console, without touching the store.
// Usage: go run ./cmd/streamtest --symbols btcusdt,ethusdt
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rickgao/trade-ingest/internal/model"
	"github.com/rickgao/trade-ingest/internal/queue"
	"github.com/rickgao/trade-ingest/internal/reconfig"
	"github.com/rickgao/trade-ingest/internal/stats"
	"github.com/rickgao/trade-ingest/internal/stream"
)

func main() {
	symbolsFlag := flag.String("symbols", "btcusdt,ethusdt", "comma-separated symbols to subscribe to")
	baseURL := flag.String("base-url", "", "stream base url, defaults to Binance production")
	verbose := flag.Bool("verbose", false, "print full trade JSON")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	var symbols []string
	for _, s := range strings.Split(*symbolsFlag, ",") {
		s = strings.TrimSpace(strings.ToUpper(s))
		if s != "" {
			symbols = append(symbols, s)
		}
	}
	if len(symbols) == 0 {
		logger.Error("no symbols given")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
	}()

	controller := reconfig.New(symbols, logger)
	q := queue.New[model.Trade](4096)
	counter := &stats.Counter{}

	ingest := stream.New(stream.DefaultIngestConfig(), *baseURL, controller, q, counter, logger)

	go printTrades(ctx, q, *verbose)

	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s := q.Stats()
				logger.Info("stats",
					"queue_depth", s.Count,
					"queue_capacity", s.Capacity,
					"total_drained", s.TotalDrained,
					"reconnects", counter.Snapshot().Reconnects,
				)
			}
		}
	}()

	logger.Info("streaming started - press Ctrl+C to stop", "symbols", symbols)
	ingest.Run(ctx)

	q.Close()
	logger.Info("shutdown complete")
}

func printTrades(ctx context.Context, q *queue.BoundedQueue[model.Trade], verbose bool) {
	for {
		items := q.Drain(64)
		if items == nil {
			return
		}
		for _, t := range items {
			if verbose {
				data, _ := json.MarshalIndent(t, "", "  ")
				fmt.Printf("[TRADE] %s\n", data)
				continue
			}
			fmt.Printf("[TRADE] %s price=%s qty=%s id=%d time=%s\n",
				t.Symbol, t.Price.String(), t.Quantity.String(), t.TradeID, t.TradeTime.Format(time.RFC3339Nano))
		}

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}
