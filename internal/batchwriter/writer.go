package batchwriter

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rickgao/trade-ingest/internal/model"
	"github.com/rickgao/trade-ingest/internal/queue"
	"github.com/rickgao/trade-ingest/internal/stats"
	"github.com/rickgao/trade-ingest/internal/store"
)

// BatchSaver commits a batch of trades. *store.Store satisfies this.
type BatchSaver interface {
	SaveBatch(ctx context.Context, trades []model.Trade) (store.Result, error)
}

// Config controls batching policy.
type Config struct {
	// BatchSize is the number of trades that triggers an immediate flush.
	BatchSize int
	// MaxLatency bounds how long a trade can sit in an open batch before
	// the batch is flushed regardless of size.
	MaxLatency time.Duration
	// TickInterval is how often the latency deadline is checked. It should
	// be small relative to MaxLatency.
	TickInterval time.Duration
	// ShutdownGrace bounds the final flush on Stop.
	ShutdownGrace time.Duration
}

// Recorder observes flush outcomes. internal/metrics.Metrics satisfies this
// interface without either package importing the other.
type Recorder interface {
	ObserveFlush(count int, conflicts int, duration time.Duration, err error)
	ObserveQueueDepth(depth, capacity int)
}

// Writer drains trades from a queue and commits them to a store in batches.
type Writer struct {
	cfg     Config
	input   *queue.BoundedQueue[model.Trade]
	store   BatchSaver
	stats   *stats.Counter
	metrics Recorder
	logger  *slog.Logger

	batchMu   sync.Mutex
	batch     []model.Trade
	openSince time.Time

	// flushMu serializes SaveBatch calls between the two loops and Stop.
	flushMu sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a Writer. metrics may be nil.
func New(cfg Config, input *queue.BoundedQueue[model.Trade], st BatchSaver, counter *stats.Counter, metrics Recorder, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 50 * time.Millisecond
	}
	if cfg.ShutdownGrace <= 0 {
		cfg.ShutdownGrace = 10 * time.Second
	}
	return &Writer{
		cfg:     cfg,
		input:   input,
		store:   st,
		stats:   counter,
		metrics: metrics,
		logger:  logger,
		batch:   make([]model.Trade, 0, cfg.BatchSize),
	}
}

// Start begins draining the queue and flushing batches.
func (w *Writer) Start(ctx context.Context) {
	w.ctx, w.cancel = context.WithCancel(ctx)

	w.wg.Add(2)
	go w.consumeLoop()
	go w.latencyLoop()

	w.logger.Info("batch writer started",
		"batch_size", w.cfg.BatchSize,
		"max_latency", w.cfg.MaxLatency,
	)
}

// Stop drains any remaining queued trades, flushes the final partial batch,
// and waits for both loops to exit, bounded by the configured grace period.
//
// The input queue should already be closed by its producer before Stop is
// called; otherwise consumeLoop's blocking Drain keeps the writer alive
// until the grace period elapses.
func (w *Writer) Stop() {
	w.logger.Info("stopping batch writer")

	if w.cancel != nil {
		w.cancel()
	}

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(w.cfg.ShutdownGrace):
		w.logger.Warn("batch writer stop timed out waiting for loops")
	}

	// Drain whatever is still buffered in the queue without blocking, then
	// flush everything accumulated so far.
	for {
		rest := w.input.TryDrain(w.cfg.BatchSize)
		if rest == nil {
			break
		}
		w.append(rest)
	}
	w.flush()

	w.logger.Info("batch writer stopped")
}

// consumeLoop pulls trades off the queue and appends them to the open
// batch, flushing immediately once the batch reaches BatchSize.
func (w *Writer) consumeLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		default:
		}

		items := w.input.Drain(w.cfg.BatchSize)
		if items == nil {
			// Queue closed and empty.
			return
		}
		w.append(items)
	}
}

// latencyLoop flushes an open batch once it has been waiting longer than
// MaxLatency, independent of whether it has reached BatchSize.
func (w *Writer) latencyLoop() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if w.metrics != nil {
				w.metrics.ObserveQueueDepth(w.input.Len(), w.input.Cap())
			}
			w.batchMu.Lock()
			mature := len(w.batch) > 0 && time.Since(w.openSince) >= w.cfg.MaxLatency
			w.batchMu.Unlock()
			if mature {
				w.flush()
			}
		}
	}
}

// append adds items to the open batch, flushing immediately if the
// configured size is reached.
func (w *Writer) append(items []model.Trade) {
	w.batchMu.Lock()
	if len(w.batch) == 0 {
		w.openSince = time.Now()
	}
	w.batch = append(w.batch, items...)
	shouldFlush := len(w.batch) >= w.cfg.BatchSize
	w.batchMu.Unlock()

	if shouldFlush {
		w.flush()
	}
}

// flush commits the open batch to the store. It is a no-op if the batch is
// empty, and safe to call from either loop since batch ownership is
// transferred under batchMu and SaveBatch runs under flushMu.
func (w *Writer) flush() {
	w.flushMu.Lock()
	defer w.flushMu.Unlock()

	w.batchMu.Lock()
	if len(w.batch) == 0 {
		w.batchMu.Unlock()
		return
	}
	batch := w.batch
	w.batch = make([]model.Trade, 0, w.cfg.BatchSize)
	w.batchMu.Unlock()

	correlationID := uuid.NewString()
	start := time.Now()

	// The process context may already be cancelled during the final
	// shutdown flush; fall back to a bounded standalone context so the
	// last batch still gets a chance to commit.
	saveCtx := w.ctx
	if saveCtx == nil || saveCtx.Err() != nil {
		var cancel context.CancelFunc
		saveCtx, cancel = context.WithTimeout(context.Background(), w.cfg.ShutdownGrace)
		defer cancel()
	}

	result, err := w.store.SaveBatch(saveCtx, batch)
	duration := time.Since(start)

	if err != nil {
		w.logger.Error("batch flush failed",
			"correlation_id", correlationID,
			"count", len(batch),
			"error", err,
		)
		if w.stats != nil {
			w.stats.AddError()
		}
		if w.metrics != nil {
			w.metrics.ObserveFlush(len(batch), 0, duration, err)
		}
		return
	}

	if w.stats != nil {
		w.stats.AddBatch(result.Inserted, result.Conflicts)
	}
	if w.metrics != nil {
		w.metrics.ObserveFlush(len(batch), result.Conflicts, duration, nil)
	}

	w.logger.Debug("flushed trade batch",
		"correlation_id", correlationID,
		"inserted", result.Inserted,
		"conflicts", result.Conflicts,
		"duration", duration,
	)
}
