package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrReadOnly           = errors.New("store is in read-only mode")
	ErrEmptyTitle         = errors.New("note title cannot be empty")
	ErrPositionOutOfRange = errors.New("note position out of range")
	ErrNotFound           = errors.New("note not found")
)

// ErrorKind classifies a storage failure.
type ErrorKind string

const (
	// KindOpen means the persisted file exists but could not be read.
	KindOpen ErrorKind = "open"
	// KindParse means the persisted content is not a valid collection document.
	KindParse ErrorKind = "parse"
	// KindSerialize means the collection could not be encoded.
	KindSerialize ErrorKind = "serialize"
	// KindWrite means the encoded collection could not be written.
	KindWrite ErrorKind = "write"
)

// StorageError is returned by Store implementations.
type StorageError struct {
	Op   string // "load" or "save"
	Kind ErrorKind
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %s error: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// KindOf reports the ErrorKind carried by err, or "" if err is not a StorageError.
func KindOf(err error) ErrorKind {
	var se *StorageError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}
