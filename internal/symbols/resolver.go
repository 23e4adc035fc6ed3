package symbols

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"
)

// ReferenceLookup fetches the currently tradeable symbol set.
// *exchangeinfo.Client satisfies this.
type ReferenceLookup interface {
	FetchTradingSymbols(ctx context.Context) (map[string]struct{}, error)
}

const cacheTTL = 10 * time.Minute

// At config-resolve time the bound is tighter than at upstream ingress,
// where Binance's own combined-stream symbols can run longer. These are
// fallback defaults; internal/config.ServiceConfig.Symbols carries the
// operator-tunable values threaded through NewResolver.
const (
	DefaultMinLenConfig = 4
	DefaultMaxLenConfig = 12
)

// Upstream ingress sees the symbol Binance itself reports in each trade
// frame, which can run longer than anything accepted in configuration.
const (
	DefaultMinLenIngress = 4
	DefaultMaxLenIngress = 20
)

// Resolver validates a configured symbol list against format rules and the
// Binance reference endpoint.
type Resolver struct {
	lookup ReferenceLookup
	cache  *recognizedCache
	minLen int
	maxLen int
	logger *slog.Logger
}

// NewResolver creates a Resolver backed by lookup. minLen and maxLen bound
// the format check applied to each configured symbol; zero values fall
// back to DefaultMinLenConfig/DefaultMaxLenConfig.
func NewResolver(lookup ReferenceLookup, minLen, maxLen int, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	if minLen == 0 {
		minLen = DefaultMinLenConfig
	}
	if maxLen == 0 {
		maxLen = DefaultMaxLenConfig
	}
	return &Resolver{
		lookup: lookup,
		cache:  newRecognizedCache(cacheTTL),
		minLen: minLen,
		maxLen: maxLen,
		logger: logger,
	}
}

// Close stops the resolver's background cache sweep.
func (r *Resolver) Close() {
	r.cache.stop()
}

// Result is the outcome of resolving a requested symbol set.
type Result struct {
	Valid   []string
	Invalid []string
	// Degraded is true when the reference endpoint could not be reached,
	// in which case Valid only reflects format validation.
	Degraded bool
}

// Resolve validates requested symbols against format rules and, when
// reachable, Binance's recognized-symbol set. Symbols are case-insensitive
// on input (operators commonly write "btcusdt"); each is normalized to
// uppercase before format validation and reference lookup, matching the
// canonical casing Binance's own trade frames use. Entries reported as
// Invalid keep their original, as-configured casing so callers can match
// them back against the on-disk config document.
func (r *Resolver) Resolve(ctx context.Context, requested []string) Result {
	var formatValid, invalid []string
	original := make(map[string]string, len(requested)) // uppercase -> as-configured
	for _, s := range requested {
		upper := strings.ToUpper(s)
		if err := ValidateFormat(upper, r.minLen, r.maxLen); err != nil {
			r.logger.Warn("rejecting symbol with invalid format", "symbol", s, "error", err)
			invalid = append(invalid, s)
			continue
		}
		original[upper] = s
		formatValid = append(formatValid, upper)
	}

	if len(formatValid) == 0 {
		return Result{Invalid: invalid}
	}

	key := cacheKey(formatValid)
	recognized, ok := r.cache.get(key)
	if !ok {
		fetched, err := r.lookup.FetchTradingSymbols(ctx)
		if err != nil {
			r.logger.Warn("exchangeinfo lookup failed, degrading to format-only validation", "error", err)
			return Result{Valid: formatValid, Invalid: invalid, Degraded: true}
		}
		recognized = fetched
		r.cache.set(key, recognized)
	}

	var valid []string
	for _, s := range formatValid {
		if _, ok := recognized[s]; ok {
			valid = append(valid, s)
		} else {
			r.logger.Warn("symbol not recognized by exchange", "symbol", s)
			invalid = append(invalid, original[s])
		}
	}

	return Result{Valid: valid, Invalid: invalid}
}

func cacheKey(symbols []string) string {
	sorted := make([]string, len(symbols))
	copy(sorted, symbols)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}
