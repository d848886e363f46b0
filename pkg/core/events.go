package core

import "fmt"

// EventType represents the type of change to the persisted collection.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a store's backing file.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}
