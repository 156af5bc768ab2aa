// Package watch waits for datasets to land on an instrument share. Callers
// register the datasets a capture task expects; as files or directories
// appear, each pending dataset is re-resolved and reported once found.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"datascout/internal/log"
	"datascout/internal/search"
	"datascout/pkg/types"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
)

// DatasetEvent is emitted when a pending dataset resolves
type DatasetEvent struct {
	Dataset   string
	Class     types.InstrumentClass
	Info      types.DatasetInfo
	Timestamp time.Time
}

// Watcher monitors one source directory for dataset arrivals using fsnotify
type Watcher struct {
	sourceDir string
	includes  []glob.Glob
	tool      *search.Tool

	// Datasets still waiting to appear, keyed by name
	pending map[string]types.InstrumentClass

	eventChan chan DatasetEvent
	stopChan  chan struct{}
	fsWatcher *fsnotify.Watcher

	// Lock for running state and the pending map
	mutex   sync.RWMutex
	running bool
}

// New creates a watcher for the given source directory. includePatterns are
// glob patterns a filesystem event's base name must match before any dataset
// re-resolution happens (keeps churn from temp files down); an empty list
// means everything qualifies.
func New(sourceDir string, includePatterns []string, eventBuffer int) (*Watcher, error) {
	info, err := os.Stat(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("error accessing source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", sourceDir)
	}

	includes := make([]glob.Glob, 0, len(includePatterns))
	for _, pattern := range includePatterns {
		matcher, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		includes = append(includes, matcher)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(sourceDir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", sourceDir, err)
	}

	if eventBuffer < 1 {
		eventBuffer = 10
	}

	return &Watcher{
		sourceDir: sourceDir,
		includes:  includes,
		tool:      search.New(),
		pending:   make(map[string]types.InstrumentClass),
		eventChan: make(chan DatasetEvent, eventBuffer),
		stopChan:  make(chan struct{}),
		fsWatcher: fsWatcher,
	}, nil
}

// SetTool replaces the search tool (tests inject a tool with a recording
// notifier).
func (w *Watcher) SetTool(tool *search.Tool) {
	w.tool = tool
}

// Await registers a dataset to wait for
func (w *Watcher) Await(dataset string, class types.InstrumentClass) {
	w.mutex.Lock()
	w.pending[dataset] = class
	w.mutex.Unlock()
	log.WithFields(log.F("dataset", dataset), log.F("class", string(class))).Info("Awaiting dataset")
}

// Events returns the channel that delivers resolved datasets
func (w *Watcher) Events() <-chan DatasetEvent {
	return w.eventChan
}

// PendingCount returns how many datasets are still unresolved
func (w *Watcher) PendingCount() int {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return len(w.pending)
}

// Start begins watching. Datasets already present on the share resolve
// immediately, before any filesystem event arrives.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mutex.Unlock()

	w.stopChan = make(chan struct{})

	w.checkPending()

	go func() {
		log.Debugf("Watcher event loop started for %s", w.sourceDir)

		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return // Channel closed
				}
				if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
					continue
				}
				if !w.eventQualifies(event.Name) {
					continue
				}
				w.checkPending()

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return // Channel closed
				}
				log.WithFields(log.F("error", err)).Error("fsnotify watcher error")

			case <-w.stopChan:
				return
			}
		}
	}()

	log.Info("Watching %s for %d pending dataset(s)", w.sourceDir, w.PendingCount())
	return nil
}

// Stop halts the watcher and closes the event channel
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return // Already stopped
	}

	close(w.stopChan)

	if err := w.fsWatcher.Close(); err != nil {
		log.WithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}

	w.running = false
	close(w.eventChan)
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// eventQualifies filters out temp/hidden names and applies include globs
func (w *Watcher) eventQualifies(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~") {
		return false
	}
	if len(w.includes) == 0 {
		return true
	}
	for _, matcher := range w.includes {
		if matcher.Match(name) {
			return true
		}
	}
	return false
}

// checkPending re-resolves every pending dataset and emits those now present
func (w *Watcher) checkPending() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		// a late fs event can land after Stop closed the event channel
		return
	}

	for dataset, class := range w.pending {
		info := w.tool.FindDatasetFileOrDirectory(w.sourceDir, dataset, class)
		if info.Type == types.NoDataset {
			continue
		}

		delete(w.pending, dataset)

		event := DatasetEvent{
			Dataset:   dataset,
			Class:     class,
			Info:      info,
			Timestamp: time.Now(),
		}

		// Non-blocking send so a slow consumer can't wedge the event loop
		select {
		case w.eventChan <- event:
		default:
			log.WithFields(log.F("dataset", dataset)).Warn("Event channel is full, dropped event")
		}
	}
}
