package platform

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/scribe/pkg/adapters/fs"
	"github.com/aretw0/scribe/pkg/adapters/sqlite"
	"github.com/aretw0/scribe/pkg/core"
)

// New builds a workspace from opts and loads it.
// Loading never fails; only store construction errors are returned.
func New(ctx context.Context, opts ...Option) (*core.Workspace, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	store := o.store
	if store == nil {
		s, err := openStore(o)
		if err != nil {
			return nil, err
		}
		store = s
	}

	ws := core.NewWorkspace(store, o.logger)
	ws.Open(ctx)
	return ws, nil
}

// OpenStore builds the store that New would use for opts.
func OpenStore(opts ...Option) (core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.store != nil {
		return o.store, nil
	}
	return openStore(o)
}

func openStore(o *options) (core.Store, error) {
	path := o.path
	if path == "" {
		path = fs.DefaultFileName
	}
	if o.devSafety && IsDevRun() {
		resolved := ResolveNotesPath(path, true)
		if resolved != path {
			o.logger.Warn("dev run detected, using sandboxed notes file", "requested", path, "path", resolved)
			if err := os.MkdirAll(filepath.Dir(resolved), 0755); err != nil {
				return nil, fmt.Errorf("failed to create sandbox directory: %w", err)
			}
		}
		path = resolved
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return sqlite.NewStore(sqlite.Config{
			Path:     path,
			Logger:   o.logger,
			ReadOnly: o.readOnly,
		}), nil
	default:
		return fs.NewStore(fs.Config{
			Path:         path,
			Logger:       o.logger,
			ReadOnly:     o.readOnly,
			ErrorHandler: o.errorHandler,
		})
	}
}
