package reconfig

import (
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
)

// Controller holds the currently active symbol set behind an atomic pointer
// and broadcasts a change notification whenever it is replaced. It
// implements internal/stream.SymbolSource.
type Controller struct {
	current atomic.Pointer[[]string]
	logger  *slog.Logger

	mu       sync.Mutex
	watchers []chan struct{}
}

// New creates a Controller seeded with the given initial symbol set.
func New(initial []string, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{logger: logger}
	set := sortedCopy(initial)
	c.current.Store(&set)
	return c
}

// Symbols returns the currently active symbol set.
func (c *Controller) Symbols() []string {
	p := c.current.Load()
	if p == nil {
		return nil
	}
	return *p
}

// Changed returns a channel that receives once the next time the symbol set
// changes. Each call returns a distinct channel; the caller should call
// Changed again after it fires to keep watching.
func (c *Controller) Changed() <-chan struct{} {
	ch := make(chan struct{}, 1)
	c.mu.Lock()
	c.watchers = append(c.watchers, ch)
	c.mu.Unlock()
	return ch
}

// SetSymbols replaces the active symbol set. It is a no-op if the new set is
// identical to the current one (after sorting), so reconnecting on a
// config-reload that doesn't actually change symbols is avoided.
func (c *Controller) SetSymbols(symbols []string) {
	next := sortedCopy(symbols)

	prev := c.current.Load()
	if prev != nil && equal(*prev, next) {
		return
	}

	c.current.Store(&next)
	c.logger.Info("active symbol set changed", "count", len(next))

	c.mu.Lock()
	watchers := c.watchers
	c.watchers = nil
	c.mu.Unlock()

	for _, w := range watchers {
		select {
		case w <- struct{}{}:
		default:
		}
	}
}

func sortedCopy(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
