package operator

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/rickgao/trade-ingest/internal/stats"
)

// Reader watches an input stream for single-byte operator commands and acts
// on them. It is intended to be wired to os.Stdin in production and to an
// io.Reader of choice in tests.
type Reader struct {
	input   io.Reader
	counter *stats.Counter
	logger  *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a Reader over the given input. If input is nil, os.Stdin is
// used.
func New(input io.Reader, counter *stats.Counter, logger *slog.Logger) *Reader {
	if input == nil {
		input = os.Stdin
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{input: input, counter: counter, logger: logger}
}

// Start begins watching the input stream in a background goroutine. The
// read loop exits once the input stream returns an error (including EOF) or
// ctx is canceled.
func (r *Reader) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go r.readLoop(ctx)
}

// Stop signals the read loop to exit and waits for it to return.
func (r *Reader) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

func (r *Reader) readLoop(ctx context.Context) {
	defer r.wg.Done()

	// The blocking read runs in its own goroutine so that ctx cancellation
	// ends this loop without waiting for the next input byte.
	input := make(chan byte)
	go func() {
		defer close(input)
		br := bufio.NewReader(r.input)
		for {
			b, err := br.ReadByte()
			if err != nil {
				if err != io.EOF {
					r.logger.Warn("operator input closed", "error", err)
				}
				return
			}
			select {
			case input <- b:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case b, ok := <-input:
			if !ok {
				return
			}
			if b == ' ' {
				r.printSnapshot()
			}
		}
	}
}

func (r *Reader) printSnapshot() {
	snap := r.counter.Snapshot()
	r.logger.Info("ingestion counters",
		"inserted", snap.Inserted,
		"conflicts", snap.Conflicts,
		"errors", snap.Errors,
		"reconnects", snap.Reconnects,
	)
}
