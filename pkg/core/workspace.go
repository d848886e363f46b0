package core

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Workspace holds the in-memory collection for a session together with the
// current filter and selection. Every mutation rewrites the whole collection
// through the Store before returning.
//
// A Workspace is not safe for concurrent use.
type Workspace struct {
	store  Store
	logger *slog.Logger

	notes    Collection
	filter   string
	selected int

	lastSaveOK bool
	saves      int
}

// NewWorkspace creates an empty Workspace backed by store. Call Open to load.
func NewWorkspace(store Store, logger *slog.Logger) *Workspace {
	return &Workspace{
		store:      store,
		logger:     loggerOrDefault(logger),
		notes:      Collection{},
		selected:   -1,
		lastSaveOK: true,
	}
}

// Open loads the collection from the store, replacing anything in memory.
// It never fails: unreadable data degrades to an empty collection.
func (w *Workspace) Open(ctx context.Context) {
	w.notes = LoadOrEmpty(ctx, w.store, w.logger)
	w.selected = -1
	w.logger.Debug("workspace opened", "notes", len(w.notes))
}

// Reload re-reads the store, keeping the filter but dropping the selection.
func (w *Workspace) Reload(ctx context.Context) {
	w.Open(ctx)
}

// Store returns the backing store.
func (w *Workspace) Store() Store {
	return w.store
}

// Notes returns a copy of the collection.
func (w *Workspace) Notes() Collection {
	return w.notes.Clone()
}

// Len returns the number of notes in the collection.
func (w *Workspace) Len() int {
	return len(w.notes)
}

// Get returns the note at pos.
func (w *Workspace) Get(pos int) (Note, error) {
	return w.notes.At(pos)
}

// Filter returns the active search query.
func (w *Workspace) Filter() string {
	return w.filter
}

// SetFilter changes the search query and clears the selection.
func (w *Workspace) SetFilter(query string) {
	w.filter = query
	w.selected = -1
}

// Visible returns the positions of the notes matching the active filter.
func (w *Workspace) Visible() []int {
	return w.notes.Filter(w.filter)
}

// Select marks the note at pos as selected.
func (w *Workspace) Select(pos int) (Note, error) {
	n, err := w.notes.At(pos)
	if err != nil {
		return Note{}, err
	}
	w.selected = pos
	return n, nil
}

// Selected returns the selected position, if any.
func (w *Workspace) Selected() (int, bool) {
	return w.selected, w.selected >= 0
}

// ClearSelection drops the selection.
func (w *Workspace) ClearSelection() {
	w.selected = -1
}

// Resolve turns a user reference into a position. The reference is either a
// note ID or a decimal position.
func (w *Workspace) Resolve(ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if pos := w.notes.IndexOf(ref); pos >= 0 {
		return pos, nil
	}
	pos, err := strconv.Atoi(ref)
	if err != nil {
		return -1, fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	if _, err := w.notes.At(pos); err != nil {
		return -1, err
	}
	return pos, nil
}

// Create appends a new note, selects it and saves the collection.
func (w *Workspace) Create(ctx context.Context, title, content string) (Note, error) {
	if title == "" {
		return Note{}, ErrEmptyTitle
	}
	n := NewNote(title)
	n.Content = content
	w.notes = w.notes.Append(n)
	w.selected = len(w.notes) - 1
	w.persist(ctx)
	return n, nil
}

// Update changes the title and content of the note at pos. Created is kept;
// Edited is bumped and the collection saved only if something changed.
func (w *Workspace) Update(ctx context.Context, pos int, title, content string) (Note, error) {
	if title == "" {
		return Note{}, ErrEmptyTitle
	}
	n, err := w.notes.At(pos)
	if err != nil {
		return Note{}, err
	}
	if n.Title == title && n.Content == content {
		return n, nil
	}
	n.Title = title
	n.Content = content
	n.Touch()
	if err := w.notes.Replace(pos, n); err != nil {
		return Note{}, err
	}
	w.persist(ctx)
	return n, nil
}

// Delete removes the note at pos, clears the selection and saves the collection.
// The note is gone, not tombstoned.
func (w *Workspace) Delete(ctx context.Context, pos int) (Note, error) {
	rest, removed, err := w.notes.Remove(pos)
	if err != nil {
		return Note{}, err
	}
	w.notes = rest
	w.selected = -1
	w.persist(ctx)
	return removed, nil
}

// Import appends notes in order and saves once. Notes without a title are
// skipped. It returns how many notes were added.
func (w *Workspace) Import(ctx context.Context, notes Collection) int {
	added := 0
	for _, n := range notes {
		if n.Title == "" {
			w.logger.Warn("skipping note without title", "id", n.ID)
			continue
		}
		if n.ID == "" || w.notes.IndexOf(n.ID) >= 0 {
			n.ID = NewID()
		}
		w.notes = w.notes.Append(n)
		added++
	}
	if added > 0 {
		w.persist(ctx)
	}
	return added
}

// LastSaveOK reports whether the most recent save succeeded.
// It is true before any save has been attempted.
func (w *Workspace) LastSaveOK() bool {
	return w.lastSaveOK
}

func (w *Workspace) persist(ctx context.Context) {
	w.saves++
	w.lastSaveOK = SaveOrLog(ctx, w.store, w.logger, w.notes)
}
