package platform

import (
	"log/slog"

	"github.com/aretw0/scribe/pkg/core"
)

// options holds the internal configuration for a scribe workspace.
type options struct {
	path         string
	store        core.Store
	logger       *slog.Logger
	readOnly     bool
	devSafety    bool
	errorHandler func(error)
}

// Option defines a functional option for configuring scribe.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		path:      "",
		store:     nil,
		logger:    nil,
		readOnly:  false,
		devSafety: true,
	}
}

// WithPath sets the notes file. The extension selects the storage format:
// .json (default), .yaml/.yml, or .db/.sqlite/.sqlite3.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithLogger sets the logger for the workspace and its store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore allows injecting a custom store (e.g. mock, in-memory).
// If provided, the path-based store selection is skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithReadOnly makes every save fail with core.ErrReadOnly.
// Loading still works, so the notes can be browsed safely.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithDevSafety controls the sandbox used when running via `go run` or `go test`.
// By default (true), a notes file outside the system temp directory is
// redirected into it to avoid touching real data during development.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}

// WithWatcherErrorHandler registers a callback for failures in the watch loop,
// which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
