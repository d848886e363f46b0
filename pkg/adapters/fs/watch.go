package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/lifecycle/pkg/core/supervisor"
	"github.com/aretw0/lifecycle/pkg/core/worker"

	"github.com/aretw0/scribe/pkg/core"
)

// Watch reports changes to the notes file made by other processes (and by
// this store's own saves). The watcher runs under a supervisor that restarts
// it on failure. The channel is closed after ctx is cancelled and the
// watcher has stopped.
func (s *Store) Watch(ctx context.Context) (<-chan core.Event, error) {
	dir := filepath.Dir(s.absPath)
	if info, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("cannot watch notes directory: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("cannot watch notes directory: %s is not a directory", dir)
	}

	events := make(chan core.Event, 16)

	spec := supervisor.Spec{
		Name: "notes-watcher",
		Type: string(worker.TypeGoroutine),
		Factory: func() (worker.Worker, error) {
			return newWatchWorker(s, events), nil
		},
		Backoff: supervisor.Backoff{
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     2 * time.Second,
			Multiplier:      2,
			ResetDuration:   30 * time.Second,
			MaxRestarts:     5,
			MaxDuration:     time.Minute,
		},
		RestartPolicy: supervisor.RestartOnFailure,
	}

	sup := supervisor.New("scribe-watch", supervisor.StrategyOneForOne, spec)
	if err := sup.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start watcher: %w", err)
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := sup.Stop(stopCtx)
		close(events)
		return err
	}, lifecycle.WithErrorHandler(func(err error) {
		s.handleError(fmt.Errorf("watcher shutdown: %w", err))
	}))

	return events, nil
}

func (s *Store) handleError(err error) {
	if s.config.ErrorHandler != nil {
		s.config.ErrorHandler(err)
		return
	}
	s.config.Logger.Error("watcher error", "error", err)
}
