// Package scribe is the composition root for a local, single-user note store.
//
// It connects the core domain (notes, collections and the session
// Workspace) with the storage adapters: a single JSON or YAML file by
// default, or a SQLite database.
//
// Every mutation rewrites the whole collection. Storage failures never
// reach the caller of Load or a mutating Workspace operation: they are
// logged, loading degrades to an empty collection and a failed save
// leaves the in-memory state as it is.
//
// Usage:
//
//	ws, err := scribe.New(ctx,
//		scribe.WithPath("notes.json"),
//		scribe.WithLogger(logger),
//	)
//
//	// Create a note (saved immediately)
//	note, err := ws.Create(ctx, "Shopping", "milk, eggs")
package scribe
