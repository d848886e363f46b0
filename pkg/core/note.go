package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the display format for note timestamps (UTC).
const TimestampLayout = "2006-01-02 15:04"

// clock is the wall-clock source for note timestamps.
var clock = time.Now

// Note is the central entity of the domain.
// It is a plain value: callers assign Title and Content directly and call
// Touch after an edit. Created never changes after NewNote.
// A note built without an ID gets one when it is first saved.
type Note struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
	Created int64  `json:"created" yaml:"created"`
	Edited  int64  `json:"edited" yaml:"edited"`
}

// NewNote creates a note with the given title, empty content and both
// timestamps set to the current time.
func NewNote(title string) Note {
	now := NowTS()
	return Note{
		ID:      NewID(),
		Title:   title,
		Created: now,
		Edited:  now,
	}
}

// NewID returns a fresh opaque note identifier.
func NewID() string {
	return uuid.NewString()
}

// NowTS returns the current wall-clock time in whole seconds since the Unix epoch.
// A clock that reads before the epoch is unusable and panics.
func NowTS() int64 {
	ts := clock().Unix()
	if ts < 0 {
		panic(fmt.Sprintf("system clock reads before the unix epoch (%d)", ts))
	}
	return ts
}

// Touch bumps Edited to the current time. Edited never moves backwards,
// so Edited >= Created holds even if the wall clock steps back.
func (n *Note) Touch() {
	if now := NowTS(); now > n.Edited {
		n.Edited = now
	}
}

// FormatTimestamp renders ts as UTC "YYYY-MM-DD HH:MM", or "-" when ts is invalid.
func FormatTimestamp(ts int64) string {
	if ts < 0 {
		return "-"
	}
	return time.Unix(ts, 0).UTC().Format(TimestampLayout)
}
