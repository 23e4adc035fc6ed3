package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rickgao/trade-ingest/internal/batchwriter"
	"github.com/rickgao/trade-ingest/internal/config"
	"github.com/rickgao/trade-ingest/internal/exchangeinfo"
	"github.com/rickgao/trade-ingest/internal/metrics"
	"github.com/rickgao/trade-ingest/internal/model"
	"github.com/rickgao/trade-ingest/internal/operator"
	"github.com/rickgao/trade-ingest/internal/queue"
	"github.com/rickgao/trade-ingest/internal/reconfig"
	"github.com/rickgao/trade-ingest/internal/stats"
	"github.com/rickgao/trade-ingest/internal/store"
	"github.com/rickgao/trade-ingest/internal/stream"
	"github.com/rickgao/trade-ingest/internal/symbols"
)

// Supervisor owns every long-running component of the ingestion pipeline
// and the order in which they start and stop.
type Supervisor struct {
	logger *slog.Logger

	store     *store.Store
	resolver  *symbols.Resolver
	exClient  *exchangeinfo.Client
	controller *reconfig.Controller
	queue     *queue.BoundedQueue[model.Trade]
	counter   *stats.Counter
	writer    *batchwriter.Writer
	ingest    *stream.Ingest
	watcher   *config.Watcher
	reader    *operator.Reader

	Metrics  *metrics.Metrics
	Registry *prometheus.Registry

	tradeConfigPath string
}

// New builds every component from svcCfg and the initial tradeCfg but does
// not start anything. tradeConfigPath is the on-disk location of tradeCfg,
// needed both to watch it for hot-reload and to rewrite it during the
// one-shot invalid-symbol cleanup.
func New(ctx context.Context, svcCfg *config.ServiceConfig, tradeCfg *config.TradeConfig, tradeConfigPath string, logger *slog.Logger) (*Supervisor, error) {
	if logger == nil {
		logger = slog.Default()
	}

	pool, err := store.Connect(ctx, store.PoolConfig{
		DSN:      tradeCfg.Postgres,
		MinConns: svcCfg.Postgres.MinConns,
		MaxConns: svcCfg.Postgres.MaxConns,
	})
	if err != nil {
		return nil, fmt.Errorf("connect store: %w", err)
	}

	st := store.New(pool)
	if err := st.EnsureSchema(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	exClient := exchangeinfo.NewClient(svcCfg.Stream.ExchangeInfoURL, exchangeinfo.WithLogger(logger))
	resolver := symbols.NewResolver(exClient, svcCfg.Symbols.MinLenConfig, svcCfg.Symbols.MaxLenConfig, logger)

	result := resolver.Resolve(ctx, tradeCfg.Symbols)
	if len(result.Invalid) > 0 {
		logger.Warn("rejecting invalid symbols from trade config", "invalid", result.Invalid, "degraded", result.Degraded)
		cleanConfigFile(tradeConfigPath, result.Invalid, logger)
	}

	controller := reconfig.New(result.Valid, logger)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	q := queue.New[model.Trade](svcCfg.Queue.Capacity)
	counter := &stats.Counter{}

	writer := batchwriter.New(batchwriter.Config{
		BatchSize:     tradeCfg.BatchSize,
		MaxLatency:    svcCfg.Writer.MaxLatency,
		TickInterval:  svcCfg.Writer.TickInterval,
		ShutdownGrace: svcCfg.Writer.ShutdownGrace,
	}, q, st, counter, m, logger)

	ingestCfg := stream.IngestConfig{
		ClientConfig: stream.ClientConfig{
			PingInterval:   svcCfg.Stream.PingInterval,
			PingTimeout:    svcCfg.Stream.HeartbeatTimeout,
			WriteTimeout:   5 * time.Second,
			ReadBufferSize: svcCfg.Stream.ReadBufferSize,
			BufferSize:     4096,
		},
		ReconnectWait: svcCfg.Stream.ReconnectWait,
		SymbolMinLen:  svcCfg.Symbols.MinLenIngress,
		SymbolMaxLen:  svcCfg.Symbols.MaxLenIngress,
	}
	ingest := stream.New(ingestCfg, svcCfg.Stream.BaseURL, controller, q, counter, logger)

	reader := operator.New(nil, counter, logger)

	watcher, err := config.NewWatcher(tradeConfigPath, func(cfg *config.TradeConfig) {
		res := resolver.Resolve(context.Background(), cfg.Symbols)
		if len(res.Invalid) > 0 {
			logger.Warn("rejecting invalid symbols from reloaded trade config", "invalid", res.Invalid, "degraded", res.Degraded)
		}
		controller.SetSymbols(res.Valid)
	}, logger)
	if err != nil {
		st.Close()
		resolver.Close()
		return nil, fmt.Errorf("watch trade config: %w", err)
	}

	return &Supervisor{
		logger:          logger,
		store:           st,
		resolver:        resolver,
		exClient:        exClient,
		controller:      controller,
		queue:           q,
		counter:         counter,
		writer:          writer,
		ingest:          ingest,
		watcher:         watcher,
		reader:          reader,
		Metrics:         m,
		Registry:        reg,
		tradeConfigPath: tradeConfigPath,
	}, nil
}

// Run starts every component and blocks until ctx is cancelled, then
// shuts everything down in dependency order.
func (s *Supervisor) Run(ctx context.Context) {
	streamCtx, streamCancel := context.WithCancel(context.Background())

	s.writer.Start(context.Background())

	var ingestWG sync.WaitGroup
	ingestWG.Add(1)
	go func() {
		defer ingestWG.Done()
		s.ingest.Run(streamCtx)
	}()

	s.watcher.Start()
	s.reader.Start(ctx)

	s.logger.Info("supervisor running", "symbols", s.controller.Symbols())

	<-ctx.Done()
	s.logger.Info("shutdown signal received, stopping pipeline")

	streamCancel()
	ingestWG.Wait()

	s.queue.Close()
	s.writer.Stop()

	s.watcher.Stop()
	s.reader.Stop()
	s.resolver.Close()
	s.store.Close()

	s.logger.Info("supervisor stopped", "counters", s.counter.Snapshot())
}

// Counter exposes the lifetime statistics counter, e.g. for a health
// handler.
func (s *Supervisor) Counter() *stats.Counter {
	return s.counter
}

// Ping verifies the store connection is healthy.
func (s *Supervisor) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func cleanConfigFile(path string, invalid []string, logger *slog.Logger) {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("could not read trade config for cleanup", "path", path, "error", err)
		return
	}

	cleaned, err := symbols.RemoveInvalidSymbols(raw, "symbols", invalid)
	if err != nil {
		logger.Warn("could not clean invalid symbols from trade config", "path", path, "error", err)
		return
	}

	if err := os.WriteFile(path, cleaned, 0644); err != nil {
		logger.Warn("could not write cleaned trade config", "path", path, "error", err)
	}
}
