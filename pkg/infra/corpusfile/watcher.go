package corpusfile

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
	"github.com/NeuralTrust/TrustAssess/pkg/riskengine"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const DefaultDebounce = 500 * time.Millisecond

type Replacer interface {
	Snapshot() *riskengine.Corpus
	Replace(c *riskengine.Corpus) error
}

// Watcher reloads the corpus file into a store whenever it changes. The
// parent directory is watched so editors that replace the file atomically
// are picked up too.
type Watcher struct {
	logger   *logrus.Logger
	path     string
	store    Replacer
	debounce time.Duration
	watcher  *fsnotify.Watcher
	reloaded chan struct{}
}

func NewWatcher(logger *logrus.Logger, path string, store Replacer, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve corpus path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %q: %w", filepath.Dir(abs), err)
	}
	return &Watcher{
		logger:   logger,
		path:     abs,
		store:    store,
		debounce: debounce,
		watcher:  fw,
		reloaded: make(chan struct{}, 1),
	}, nil
}

// Reloaded signals after each reload attempt; used by tests.
func (w *Watcher) Reloaded() <-chan struct{} {
	return w.reloaded
}

// Run blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	defer func() { _ = w.watcher.Close() }()

	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(w.debounce, w.reload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.WithError(err).Warn("corpus file watcher error")
		}
	}
}

func (w *Watcher) reload() {
	defer func() {
		select {
		case w.reloaded <- struct{}{}:
		default:
		}
	}()

	corpus, err := Load(w.path)
	if err != nil {
		w.logger.WithError(err).WithField("path", w.path).Error("corpus reload failed, keeping previous corpus")
		return
	}
	previous := w.store.Snapshot()
	if err := w.store.Replace(corpus); err != nil {
		w.logger.WithError(err).Error("corpus replace failed")
		return
	}
	if dropped := droppedKeywords(previous, corpus); dropped > 0 {
		w.logger.WithFields(logrus.Fields{
			"path":    w.path,
			"dropped": dropped,
		}).Warn("corpus reload discarded keywords missing from the file, including any added through the API")
	}
	w.logger.WithFields(logrus.Fields{
		"path":     w.path,
		"keywords": corpus.TotalKeywords(),
	}).Info("corpus reloaded")
}

// droppedKeywords counts phrases of prev that next no longer lists.
func droppedKeywords(prev, next *riskengine.Corpus) int {
	if prev == nil {
		return 0
	}
	dropped := 0
	for _, cat := range risk.Categories() {
		before, err := prev.ListFor(cat)
		if err != nil {
			continue
		}
		after, err := next.ListFor(cat)
		if err != nil {
			dropped += len(before)
			continue
		}
		kept := make(map[string]struct{}, len(after))
		for _, k := range after {
			kept[k] = struct{}{}
		}
		for _, k := range before {
			if _, ok := kept[k]; !ok {
				dropped++
			}
		}
	}
	return dropped
}
