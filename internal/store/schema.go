package store

import "context"

// schemaDDL creates the trades table if it does not already exist.
// (symbol, trade_id) is the primary key: it is the unit of deduplication
// for trades replayed after a reconnect.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS trades (
	symbol     TEXT             NOT NULL,
	trade_id   BIGINT           NOT NULL,
	price      NUMERIC          NOT NULL,
	quantity   NUMERIC          NOT NULL,
	trade_time TIMESTAMPTZ      NOT NULL,
	inserted_at TIMESTAMPTZ     NOT NULL DEFAULT now(),
	PRIMARY KEY (symbol, trade_id)
);
`

// EnsureSchema creates the trades table if it does not exist. It is
// idempotent and safe to call on every startup.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, schemaDDL)
	return err
}
