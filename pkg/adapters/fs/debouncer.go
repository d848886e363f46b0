package fs

import (
	"sync"
	"time"

	"github.com/aretw0/scribe/pkg/core"
)

// debouncer coalesces bursts of events per path and delivers only the last one.
type debouncer struct {
	delay   time.Duration
	mu      sync.Mutex
	timers  map[string]*time.Timer
	wg      sync.WaitGroup
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// add schedules fn(e) after the quiet period, replacing any pending event for the same path.
func (d *debouncer) add(e core.Event, fn func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	key := e.Path
	if t, ok := d.timers[key]; ok && t.Stop() {
		d.wg.Done()
	}

	d.wg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		if d.timers[key] == t {
			delete(d.timers, key)
		}
		d.mu.Unlock()

		fn(e)
	})
	d.timers[key] = t
}

// stopAndWait cancels pending events and waits up to timeout for running callbacks.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for key, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, key)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
