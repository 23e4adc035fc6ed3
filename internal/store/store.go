package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rickgao/trade-ingest/internal/model"
)

// Store writes committed trade batches to a single PostgreSQL pool.
type Store struct {
	pool *pgxpool.Pool
}

// New wraps an already-connected pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Close closes the underlying pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Ping verifies the connection is healthy.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Result reports how many rows a SaveBatch call actually inserted versus
// how many were absorbed as duplicates of an already-stored trade.
type Result struct {
	Inserted  int
	Conflicts int
}

// SaveBatch commits trades as a single transaction using one array-expansion
// INSERT: five parallel arrays are unnested into rows in one round trip
// rather than one statement per row. Duplicate (symbol, trade_id) pairs are
// silently dropped by the primary key.
//
// No two goroutines may call SaveBatch concurrently for the same Store; the
// batch writer enforces this by serializing its flushes.
func (s *Store) SaveBatch(ctx context.Context, trades []model.Trade) (Result, error) {
	if len(trades) == 0 {
		return Result{}, nil
	}

	symbols := make([]string, len(trades))
	tradeIDs := make([]int64, len(trades))
	prices := make([]string, len(trades))
	quantities := make([]string, len(trades))
	tradeTimes := make([]time.Time, len(trades))

	for i, t := range trades {
		symbols[i] = t.Symbol
		tradeIDs[i] = t.TradeID
		prices[i] = t.Price.String()
		quantities[i] = t.Quantity.String()
		tradeTimes[i] = t.TradeTime
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		INSERT INTO trades (symbol, trade_id, price, quantity, trade_time)
		SELECT * FROM unnest(
			$1::text[],
			$2::bigint[],
			$3::numeric[],
			$4::numeric[],
			$5::timestamptz[]
		)
		ON CONFLICT (symbol, trade_id) DO NOTHING
	`, symbols, tradeIDs, prices, quantities, tradeTimes)
	if err != nil {
		return Result{}, fmt.Errorf("insert batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Result{}, fmt.Errorf("commit batch: %w", err)
	}

	inserted := int(tag.RowsAffected())
	return Result{
		Inserted:  inserted,
		Conflicts: len(trades) - inserted,
	}, nil
}
