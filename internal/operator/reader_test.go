package operator

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rickgao/trade-ingest/internal/stats"
)

func TestReader_SpacePrintsSnapshot(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	counter := &stats.Counter{}
	counter.AddBatch(10, 1)

	input := strings.NewReader("x x  \n")
	r := New(input, counter, logger)

	r.Start(context.Background())
	defer r.Stop()

	deadline := time.After(time.Second)
	for {
		if strings.Contains(logBuf.String(), "ingestion counters") {
			break
		}
		select {
		case <-deadline:
			t.Fatal("expected a counters log line after space input")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if got := logBuf.String(); !strings.Contains(got, "inserted=10") {
		t.Errorf("log output = %q, want it to contain inserted=10", got)
	}
}

func TestReader_StopReturnsAfterEOF(t *testing.T) {
	counter := &stats.Counter{}
	input := strings.NewReader("")
	r := New(input, counter, nil)

	r.Start(context.Background())
	r.Stop()
}
