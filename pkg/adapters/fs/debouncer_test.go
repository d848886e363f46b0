package fs

import (
	"sync"
	"testing"
	"time"

	"github.com/aretw0/scribe/pkg/core"
)

func TestDebouncer(t *testing.T) {
	t.Run("Coalesces Burst Per Path", func(t *testing.T) {
		d := newDebouncer(30 * time.Millisecond)

		var mu sync.Mutex
		var got []core.Event
		record := func(e core.Event) {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, e)
		}

		d.add(core.Event{Type: core.EventCreate, Path: "a"}, record)
		d.add(core.Event{Type: core.EventModify, Path: "a"}, record)
		d.add(core.Event{Type: core.EventModify, Path: "b"}, record)

		time.Sleep(150 * time.Millisecond)
		d.stopAndWait(time.Second)

		mu.Lock()
		defer mu.Unlock()
		if len(got) != 2 {
			t.Fatalf("expected 2 events, got %d: %v", len(got), got)
		}
		for _, e := range got {
			if e.Path == "a" && e.Type != core.EventModify {
				t.Errorf("expected last event for a to win, got %s", e.Type)
			}
		}
	})

	t.Run("Stop Drops Pending Events", func(t *testing.T) {
		d := newDebouncer(time.Hour)
		fired := false
		d.add(core.Event{Path: "a"}, func(core.Event) { fired = true })
		d.stopAndWait(time.Second)

		d.add(core.Event{Path: "b"}, func(core.Event) { fired = true })
		if fired {
			t.Error("no callback should run after stop")
		}
	})
}
