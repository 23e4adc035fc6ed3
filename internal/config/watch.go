package config

import (
	"log/slog"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher follows a trade config file on disk and invokes onChange with
// the freshly parsed TradeConfig every time the file is written. Parse
// errors are logged and skipped; the last-known-good config is left in
// place so a transient editor save (truncate, then write) does not tear
// down the running subscription.
type Watcher struct {
	path     string
	onChange func(*TradeConfig)
	logger   *slog.Logger

	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher creates a Watcher for path. onChange is called from the
// watcher's own goroutine; callers that need to touch shared state should
// synchronize internally (reconfig.Controller.SetSymbols already does).
func NewWatcher(path string, onChange func(*TradeConfig), logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, err
	}

	return &Watcher{
		path:     path,
		onChange: onChange,
		logger:   logger,
		watcher:  fw,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.loop()
}

// Stop closes the underlying fsnotify watcher and waits for the loop to
// exit.
func (w *Watcher) Stop() {
	close(w.done)
	w.watcher.Close()
	w.wg.Wait()
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			cfg, err := LoadTradeConfig(w.path)
			if err != nil {
				w.logger.Warn("trade config reload failed, keeping previous config", "path", w.path, "error", err)
				continue
			}
			if err := cfg.Validate(); err != nil {
				w.logger.Warn("trade config reload produced invalid config, keeping previous config", "path", w.path, "error", err)
				continue
			}
			w.onChange(cfg)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("trade config watcher error", "error", err)
		}
	}
}
