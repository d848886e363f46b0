package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/scribe/pkg/core"
)

const debounceDelay = 50 * time.Millisecond

type watchWorker struct {
	*worker.BaseWorker
	store     *Store
	events    chan<- core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

func newWatchWorker(store *Store, events chan<- core.Event) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("notes-watcher"),
		store:      store,
		events:     events,
	}
}

func (w *watchWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory: atomic saves replace the file, which would drop a file watch.
	if err := watcher.Add(filepath.Dir(w.store.absPath)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.store.absPath), err)
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(debounceDelay)
	w.store.setWatcherActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watchWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}

	return w.BaseWorker.Stop(ctx)
}

func (w *watchWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
			"path":              w.store.Path,
		}
	})
}

// processFilesystemEvent filters, maps and debounces one fsnotify event.
// Returns true if the event concerned the notes file.
func (w *watchWorker) processFilesystemEvent(ctx context.Context, event fsnotify.Event) bool {
	logger := w.store.config.Logger
	logger.Debug("event received", "name", event.Name, "op", event.Op.String())

	if filepath.Clean(event.Name) != w.store.absPath {
		return false
	}

	eType := mapEventType(event)
	if eType == "" {
		return false
	}

	w.sendEvent(ctx, core.Event{
		Type:      eType,
		Path:      w.store.Path,
		Timestamp: time.Now().Unix(),
	})
	return true
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}

// sendEvent enqueues an event via the debouncer, protecting against channel closure during shutdown.
func (w *watchWorker) sendEvent(ctx context.Context, event core.Event) {
	w.debouncer.add(event, func(e core.Event) {
		defer func() {
			// The channel is closed once the supervisor has stopped.
			_ = recover()
		}()
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}

func (w *watchWorker) run(ctx context.Context) (err error) {
	logger := w.store.config.Logger
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if logger.Enabled(ctx, slog.LevelDebug) {
				logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			} else {
				logger.Error("watcher panic", "error", err)
			}
		}
	}()
	defer w.store.setWatcherActive(false)
	defer w.watcher.Close()

	err = w.mainEventLoop(ctx)

	// Drain in-flight timers before the events channel can be closed.
	w.debouncer.stopAndWait(5 * time.Second)

	return err
}

func (w *watchWorker) mainEventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.processFilesystemEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.store.handleError(fmt.Errorf("fsnotify: %w", wErr))
		}
	}
}
