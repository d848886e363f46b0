package core_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aretw0/scribe/pkg/core"
	"github.com/aretw0/scribe/pkg/core/mocks"
)

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// memStore is a minimal in-memory core.Store.
type memStore struct {
	notes core.Collection
	saves int
}

func (m *memStore) Load(ctx context.Context) (core.Collection, error) {
	return m.notes.Clone(), nil
}

func (m *memStore) Save(ctx context.Context, notes core.Collection) error {
	m.notes = notes.Clone()
	m.saves++
	return nil
}

func TestWorkspace_Open(t *testing.T) {
	t.Run("Load Failure Degrades To Empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(nil, &core.StorageError{
			Op: "load", Kind: core.KindParse, Path: "notes.json", Err: errors.New("bad json"),
		})

		var logs bytes.Buffer
		ws := core.NewWorkspace(store, newLogger(&logs))
		ws.Open(context.Background())

		assert.Equal(t, 0, ws.Len())
		assert.Contains(t, logs.String(), "failed to load notes")
		assert.Contains(t, logs.String(), "kind=parse")
	})

	t.Run("Nil Collection Becomes Empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(nil, nil)

		ws := core.NewWorkspace(store, nil)
		ws.Open(context.Background())

		require.NotNil(t, ws.Notes())
		assert.Equal(t, 0, ws.Len())
	})
}

func TestWorkspace_Create(t *testing.T) {
	t.Run("Appends Selects And Saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(core.Collection{{ID: "a", Title: "First"}}, nil)

		var saved core.Collection
		store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, notes core.Collection) error {
				saved = notes.Clone()
				return nil
			})

		ws := core.NewWorkspace(store, nil)
		ws.Open(context.Background())

		n, err := ws.Create(context.Background(), "Shopping", "milk, eggs")
		require.NoError(t, err)
		assert.Equal(t, n.Created, n.Edited)

		require.Len(t, saved, 2)
		assert.Equal(t, "First", saved[0].Title)
		assert.Equal(t, "Shopping", saved[1].Title)
		assert.Equal(t, "milk, eggs", saved[1].Content)

		pos, ok := ws.Selected()
		assert.True(t, ok)
		assert.Equal(t, 1, pos)
		assert.True(t, ws.LastSaveOK())
	})

	t.Run("Rejects Empty Title Without Saving", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)

		ws := core.NewWorkspace(store, nil)
		_, err := ws.Create(context.Background(), "", "body")
		assert.ErrorIs(t, err, core.ErrEmptyTitle)
		assert.Equal(t, 0, ws.Len())
	})

	t.Run("Save Failure Keeps Memory State", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(&core.StorageError{
			Op: "save", Kind: core.KindWrite, Path: "notes.json", Err: errors.New("disk full"),
		})

		var logs bytes.Buffer
		ws := core.NewWorkspace(store, newLogger(&logs))

		_, err := ws.Create(context.Background(), "Draft", "")
		require.NoError(t, err)
		assert.Equal(t, 1, ws.Len())
		assert.False(t, ws.LastSaveOK())
		assert.Contains(t, logs.String(), "failed to save notes")
		assert.Contains(t, logs.String(), "kind=write")
	})
}

func TestWorkspace_Update(t *testing.T) {
	store := &memStore{notes: core.Collection{{ID: "a", Title: "A", Content: "old", Created: 10, Edited: 10}}}
	ws := core.NewWorkspace(store, nil)
	ws.Open(context.Background())

	t.Run("Keeps Created And Bumps Edited", func(t *testing.T) {
		n, err := ws.Update(context.Background(), 0, "A2", "new")
		require.NoError(t, err)

		assert.Equal(t, int64(10), n.Created)
		assert.GreaterOrEqual(t, n.Edited, int64(10))
		assert.Equal(t, "a", n.ID)
		require.Len(t, store.notes, 1)
		assert.Equal(t, "A2", store.notes[0].Title)
		assert.Equal(t, "new", store.notes[0].Content)
		assert.Equal(t, 1, store.saves)
	})

	t.Run("No Change Skips Save", func(t *testing.T) {
		_, err := ws.Update(context.Background(), 0, "A2", "new")
		require.NoError(t, err)
		assert.Equal(t, 1, store.saves)
	})

	t.Run("Rejects Empty Title", func(t *testing.T) {
		_, err := ws.Update(context.Background(), 0, "", "x")
		assert.ErrorIs(t, err, core.ErrEmptyTitle)
	})

	t.Run("Out Of Range", func(t *testing.T) {
		_, err := ws.Update(context.Background(), 5, "x", "x")
		assert.ErrorIs(t, err, core.ErrPositionOutOfRange)
	})
}

func TestWorkspace_Delete(t *testing.T) {
	store := &memStore{notes: core.Collection{
		{ID: "a", Title: "A"},
		{ID: "b", Title: "B"},
		{ID: "c", Title: "C"},
	}}
	ws := core.NewWorkspace(store, nil)
	ws.Open(context.Background())
	_, err := ws.Select(1)
	require.NoError(t, err)

	removed, err := ws.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "B", removed.Title)

	require.Len(t, store.notes, 2)
	assert.Equal(t, "A", store.notes[0].Title)
	assert.Equal(t, "C", store.notes[1].Title)
	assert.Equal(t, -1, store.notes.IndexOf("b"))

	_, ok := ws.Selected()
	assert.False(t, ok)
}

func TestWorkspace_FilterAndResolve(t *testing.T) {
	store := &memStore{notes: core.Collection{
		{ID: "a", Title: "Shopping", Content: "milk"},
		{ID: "b", Title: "Work", Content: "report"},
	}}
	ws := core.NewWorkspace(store, nil)
	ws.Open(context.Background())

	_, err := ws.Select(0)
	require.NoError(t, err)

	ws.SetFilter("REPORT")
	assert.Equal(t, []int{1}, ws.Visible())
	_, ok := ws.Selected()
	assert.False(t, ok, "changing the filter clears the selection")

	pos, err := ws.Resolve("b")
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	pos, err = ws.Resolve(" 0 ")
	require.NoError(t, err)
	assert.Equal(t, 0, pos)

	_, err = ws.Resolve("nope")
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = ws.Resolve("7")
	assert.ErrorIs(t, err, core.ErrPositionOutOfRange)
}

func TestWorkspace_Import(t *testing.T) {
	store := &memStore{notes: core.Collection{{ID: "a", Title: "A"}}}
	ws := core.NewWorkspace(store, nil)
	ws.Open(context.Background())

	added := ws.Import(context.Background(), core.Collection{
		{ID: "a", Title: "Dup ID"},
		{Title: ""},
		{Title: "Fresh"},
	})

	assert.Equal(t, 2, added)
	assert.Equal(t, 1, store.saves)
	require.Len(t, store.notes, 3)
	assert.NotEqual(t, "a", store.notes[1].ID)
	assert.NotEmpty(t, store.notes[2].ID)
}

func TestWorkspace_State(t *testing.T) {
	ws := core.NewWorkspace(&memStore{}, nil)
	state, ok := ws.State().(core.WorkspaceState)
	require.True(t, ok)
	assert.Equal(t, "store", state.StoreType)
	assert.True(t, state.LastSaveOK)
	assert.Equal(t, "workspace", ws.ComponentType())
}
