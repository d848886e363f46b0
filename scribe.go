package scribe

import (
	"context"
	"log/slog"

	"github.com/aretw0/scribe/internal/platform"
	"github.com/aretw0/scribe/pkg/core"
)

// Version of the scribe module.
const Version = "0.3.1"

// --- Configuration ---

// Option defines a functional option for configuring scribe.
type Option = platform.Option

// WithPath sets the notes file; its extension selects the format.
func WithPath(path string) Option {
	return platform.WithPath(path)
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore injects a custom store.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithReadOnly refuses every save with core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithDevSafety controls the `go run` sandbox (enabled by default).
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithWatcherErrorHandler receives failures of the watch loop.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Entry points ---

// New creates a workspace and loads the notes.
func New(ctx context.Context, opts ...Option) (*core.Workspace, error) {
	return platform.New(ctx, opts...)
}

// OpenStore returns the store New would use, without loading it.
func OpenStore(opts ...Option) (core.Store, error) {
	return platform.OpenStore(opts...)
}

// ErrConfigNotFound is returned by FindConfig when no scribe.yaml exists.
var ErrConfigNotFound = platform.ErrConfigNotFound

// FindConfig looks upwards from dir for scribe.yaml.
func FindConfig(dir string) (string, error) {
	return platform.FindConfig(dir)
}
