package content

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher reports content changes under a set of directories. Bursts of events
// (editors write files in several steps) are collapsed into one callback.
type Watcher struct {
	fs       *fsnotify.Watcher
	logger   *zap.Logger
	debounce time.Duration
	onChange func(paths []string)

	mu      sync.Mutex
	pending map[string]struct{}
	done    chan struct{}
}

// NewWatcher watches dirs and calls onChange with the changed paths.
func NewWatcher(logger *zap.Logger, onChange func(paths []string), dirs ...string) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			// the directory may be created later; the rest still gets watched
			logger.Warn("content watcher: skip directory", zap.String("dir", dir), zap.Error(err))
			continue
		}
		logger.Debug("content watcher: watching", zap.String("dir", dir))
	}
	return &Watcher{
		fs:       fw,
		logger:   logger,
		debounce: defaultDebounce,
		onChange: onChange,
		pending:  map[string]struct{}{},
		done:     make(chan struct{}),
	}, nil
}

// Run processes events until ctx is cancelled, then closes the underlying watcher.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.done)
	defer func() {
		if err := w.fs.Close(); err != nil {
			w.logger.Warn("content watcher: close", zap.Error(err))
		}
	}()

	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()
	var last time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.mu.Lock()
			w.pending[filepath.Clean(ev.Name)] = struct{}{}
			w.mu.Unlock()
			last = time.Now()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("content watcher: error", zap.Error(err))
		case <-ticker.C:
			if last.IsZero() || time.Since(last) < w.debounce {
				continue
			}
			last = time.Time{}
			w.flush()
		}
	}
}

// Done is closed once Run returns.
func (w *Watcher) Done() <-chan struct{} { return w.done }

func (w *Watcher) flush() {
	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = map[string]struct{}{}
	w.mu.Unlock()
	if len(paths) == 0 || w.onChange == nil {
		return
	}
	w.onChange(paths)
}
