package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scribelifecycle "github.com/aretw0/scribe/pkg/adapters/lifecycle"
	"github.com/aretw0/scribe/pkg/core"
)

func TestSource_ForwardsAndCloses(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	upstream := make(chan core.Event, 1)
	src := scribelifecycle.NewSource(upstream)
	require.NoError(t, src.Start(ctx))

	upstream <- core.Event{Type: core.EventModify, Path: "notes.json"}

	select {
	case e := <-src.Events():
		assert.Equal(t, "MODIFY notes.json", e.String())
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for forwarded event")
	}

	close(upstream)

	select {
	case _, ok := <-src.Events():
		assert.False(t, ok, "source should close when upstream closes")
	case <-time.After(time.Second):
		t.Fatal("source did not close")
	}
}
