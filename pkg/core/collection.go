package core

import (
	"fmt"
	"strings"
)

// Collection is the ordered sequence of notes for a session.
// Order is insertion order; a position is only meaningful until the next removal.
type Collection []Note

// Len returns the number of notes.
func (c Collection) Len() int {
	return len(c)
}

// At returns the note at pos.
func (c Collection) At(pos int) (Note, error) {
	if err := c.check(pos); err != nil {
		return Note{}, err
	}
	return c[pos], nil
}

// IndexOf returns the position of the note with the given ID, or -1.
func (c Collection) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, n := range c {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// Filter returns, in order, the positions whose title or content contains
// query, ignoring case. An empty query matches every note.
func (c Collection) Filter(query string) []int {
	q := strings.ToLower(query)
	positions := make([]int, 0, len(c))
	for i, n := range c {
		if q == "" ||
			strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q) {
			positions = append(positions, i)
		}
	}
	return positions
}

// Append returns the collection with n added at the end.
func (c Collection) Append(n Note) Collection {
	return append(c, n)
}

// Replace overwrites the note at pos in place.
func (c Collection) Replace(pos int, n Note) error {
	if err := c.check(pos); err != nil {
		return err
	}
	c[pos] = n
	return nil
}

// Remove returns a new collection without the note at pos, and the removed note.
// Later notes shift down by one position. The receiver is left untouched.
func (c Collection) Remove(pos int) (Collection, Note, error) {
	if err := c.check(pos); err != nil {
		return c, Note{}, err
	}
	removed := c[pos]
	out := make(Collection, 0, len(c)-1)
	out = append(out, c[:pos]...)
	out = append(out, c[pos+1:]...)
	return out, removed, nil
}

// EnsureIDs gives every note without an ID a fresh one, in place.
// Stores call it before writing so a reload yields the same notes.
func (c Collection) EnsureIDs() {
	for i := range c {
		if c[i].ID == "" {
			c[i].ID = NewID()
		}
	}
}

// Clone returns a copy that does not share backing storage with c.
// The result is never nil.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

func (c Collection) check(pos int) error {
	if pos < 0 || pos >= len(c) {
		return fmt.Errorf("%w: %d (have %d notes)", ErrPositionOutOfRange, pos, len(c))
	}
	return nil
}
