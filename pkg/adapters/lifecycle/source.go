package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/scribe/pkg/core"
)

type notesSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits notes-file change events.
// It bridges the typed event channel to the generic lifecycle Event interface.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &notesSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *notesSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *notesSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// core.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
