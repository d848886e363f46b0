package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/scribe/pkg/adapters/fs"
	"github.com/aretw0/scribe/pkg/core"
)

func waitForWatcher(t *testing.T, store *fs.Store, expected bool) {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		state, ok := store.State().(fs.StoreState)
		if ok && state.WatcherActive == expected {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("timeout waiting for watcher state = %v", expected)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestStore_Watch(t *testing.T) {
	store, path, _ := setupStore(t, "notes.json")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := store.Watch(ctx)
	require.NoError(t, err)
	waitForWatcher(t, store, true)

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.txt"), []byte("x"), 0644))

	// An external writer replaces the notes file.
	other, err := fs.NewStore(fs.Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, other.Save(context.Background(), core.Collection{core.NewNote("External")}))

	select {
	case e := <-events:
		assert.Equal(t, path, e.Path)
		assert.NotEqual(t, core.EventDelete, e.Type)
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for change event")
	}

	cancel()

	deadline := time.After(3 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				waitForWatcher(t, store, false)
				return
			}
		case <-deadline:
			t.Fatal("events channel was not closed after cancel")
		}
	}
}

func TestStore_WatchMissingDirectory(t *testing.T) {
	store, err := fs.NewStore(fs.Config{Path: filepath.Join(t.TempDir(), "missing", "notes.json")})
	require.NoError(t, err)

	_, err = store.Watch(context.Background())
	assert.Error(t, err)
}
