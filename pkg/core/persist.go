package core

import (
	"context"
	"log/slog"
)

// LoadOrEmpty loads the collection from store and never fails.
// Any storage error is logged and degrades to an empty collection; the
// persisted data, if any, is left on disk untouched.
func LoadOrEmpty(ctx context.Context, store Store, logger *slog.Logger) Collection {
	notes, err := store.Load(ctx)
	if err != nil {
		loggerOrDefault(logger).Error("failed to load notes, starting empty",
			"kind", string(KindOf(err)),
			"error", err,
		)
		return Collection{}
	}
	if notes == nil {
		return Collection{}
	}
	return notes
}

// SaveOrLog saves notes to store. A failure is logged and reported only
// through the boolean; the caller's in-memory collection is not rolled back.
func SaveOrLog(ctx context.Context, store Store, logger *slog.Logger, notes Collection) bool {
	if err := store.Save(ctx, notes); err != nil {
		loggerOrDefault(logger).Error("failed to save notes",
			"kind", string(KindOf(err)),
			"count", len(notes),
			"error", err,
		)
		return false
	}
	return true
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
