package core

import (
	"github.com/aretw0/introspection"
)

// WorkspaceState exposes internal state for observability.
type WorkspaceState struct {
	Notes      int    `json:"notes"`
	Visible    int    `json:"visible"`
	Filter     string `json:"filter,omitempty"`
	Selected   int    `json:"selected"`
	Saves      int    `json:"saves"`
	LastSaveOK bool   `json:"last_save_ok"`
	StoreType  string `json:"store_type"`
}

// State implements introspection.Introspectable.
func (w *Workspace) State() any {
	storeType := "unknown"
	if w.store != nil {
		storeType = "store"
		if comp, ok := w.store.(introspection.Component); ok {
			storeType = comp.ComponentType()
		}
	}

	return WorkspaceState{
		Notes:      len(w.notes),
		Visible:    len(w.Visible()),
		Filter:     w.filter,
		Selected:   w.selected,
		Saves:      w.saves,
		LastSaveOK: w.lastSaveOK,
		StoreType:  storeType,
	}
}

// ComponentType implements introspection.Component.
func (w *Workspace) ComponentType() string {
	return "workspace"
}

var _ introspection.Introspectable = (*Workspace)(nil)
var _ introspection.Component = (*Workspace)(nil)
