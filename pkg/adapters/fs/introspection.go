package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string     `json:"path"`
	Format        string     `json:"format"`
	ReadOnly      bool       `json:"read_only"`
	WatcherActive bool       `json:"watcher_active"`
	LastLoad      *time.Time `json:"last_load,omitempty"`
	LastSave      *time.Time `json:"last_save,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StoreState{
		Path:          s.Path,
		Format:        s.serializer.Format(),
		ReadOnly:      s.config.ReadOnly,
		WatcherActive: s.watcherActive,
		LastLoad:      s.lastLoad,
		LastSave:      s.lastSave,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "file-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
