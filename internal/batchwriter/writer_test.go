package batchwriter

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rickgao/trade-ingest/internal/model"
	"github.com/rickgao/trade-ingest/internal/queue"
	"github.com/rickgao/trade-ingest/internal/stats"
	"github.com/rickgao/trade-ingest/internal/store"
)

type fakeSaver struct {
	mu    sync.Mutex
	calls [][]model.Trade
}

func (f *fakeSaver) SaveBatch(ctx context.Context, trades []model.Trade) (store.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := make([]model.Trade, len(trades))
	copy(cp, trades)
	f.calls = append(f.calls, cp)
	return store.Result{Inserted: len(trades)}, nil
}

func (f *fakeSaver) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeSaver) totalRows() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += len(c)
	}
	return n
}

func testTrade(id int64) model.Trade {
	return model.Trade{
		Symbol:    "BTCUSDT",
		Price:     decimal.RequireFromString("100.00"),
		Quantity:  decimal.RequireFromString("1.00"),
		TradeID:   id,
		TradeTime: time.Now().UTC(),
	}
}

func TestWriter_FlushesOnBatchSize(t *testing.T) {
	q := queue.New[model.Trade](100)
	saver := &fakeSaver{}
	var counter stats.Counter

	w := New(Config{BatchSize: 5, MaxLatency: time.Hour}, q, saver, &counter, nil, nil)
	w.Start(context.Background())
	defer func() { q.Close(); w.Stop() }()

	for i := int64(0); i < 5; i++ {
		q.Offer(testTrade(i))
	}

	deadline := time.Now().Add(time.Second)
	for saver.callCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	if saver.callCount() != 1 {
		t.Fatalf("callCount() = %d, want 1", saver.callCount())
	}
	if saver.totalRows() != 5 {
		t.Fatalf("totalRows() = %d, want 5", saver.totalRows())
	}
}

func TestWriter_FlushesOnMaxLatency(t *testing.T) {
	q := queue.New[model.Trade](100)
	saver := &fakeSaver{}
	var counter stats.Counter

	w := New(Config{
		BatchSize:    100,
		MaxLatency:   30 * time.Millisecond,
		TickInterval: 5 * time.Millisecond,
	}, q, saver, &counter, nil, nil)
	w.Start(context.Background())
	defer func() { q.Close(); w.Stop() }()

	q.Offer(testTrade(1))

	deadline := time.Now().Add(time.Second)
	for saver.callCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	if saver.callCount() != 1 {
		t.Fatalf("callCount() = %d, want 1 (latency-triggered flush)", saver.callCount())
	}
}

func TestWriter_StopFlushesRemainder(t *testing.T) {
	q := queue.New[model.Trade](100)
	saver := &fakeSaver{}
	var counter stats.Counter

	w := New(Config{BatchSize: 100, MaxLatency: time.Hour}, q, saver, &counter, nil, nil)
	w.Start(context.Background())

	q.Offer(testTrade(1))
	q.Offer(testTrade(2))
	time.Sleep(20 * time.Millisecond)

	// In production the upstream producer closes the queue before the
	// writer is stopped, which is what unblocks consumeLoop's Drain.
	q.Close()
	w.Stop()

	if saver.totalRows() != 2 {
		t.Fatalf("totalRows() after Stop = %d, want 2", saver.totalRows())
	}
	if got := counter.Snapshot().Inserted; got != 2 {
		t.Fatalf("counter Inserted = %d, want 2", got)
	}
}
