package core

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_store.go -package=mocks github.com/aretw0/scribe/pkg/core Store

import "context"

// Store persists the whole note collection.
// There is no partial read or write: Save replaces everything Load would return.
type Store interface {
	// Load returns the persisted collection.
	// A store that has never been written returns an empty collection and no error.
	Load(ctx context.Context) (Collection, error)

	// Save overwrites the persisted collection with notes.
	Save(ctx context.Context, notes Collection) error
}

// Watchable is implemented by stores that can report external changes to
// their persisted representation.
type Watchable interface {
	// Watch streams change events until ctx is cancelled, then closes the channel.
	Watch(ctx context.Context) (<-chan Event, error)
}
