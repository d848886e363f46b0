package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/aretw0/scribe/pkg/core"
)

const schema = `CREATE TABLE IF NOT EXISTS notes (
	position INTEGER PRIMARY KEY,
	id TEXT NOT NULL,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	created INTEGER NOT NULL,
	edited INTEGER NOT NULL
);`

// Store implements core.Store on a SQLite database file.
// The table is rewritten in full on every Save, in one transaction.
type Store struct {
	Path     string
	logger   *slog.Logger
	readOnly bool

	mu sync.Mutex
	db *sql.DB
}

// Config holds the configuration for the SQLite store.
type Config struct {
	Path     string
	Logger   *slog.Logger
	ReadOnly bool
}

// NewStore creates a SQLite-backed store. The database is opened lazily so
// connection failures surface as storage errors from Load and Save.
func NewStore(config Config) *Store {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		Path:     config.Path,
		logger:   logger,
		readOnly: config.ReadOnly,
	}
}

// open returns the shared connection, creating the schema on first use.
func (s *Store) open(ctx context.Context) (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	db, err := sql.Open("sqlite3", s.Path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	s.db = db
	return db, nil
}

// Load reads all notes ordered by position. A missing database file is
// the first-run state and yields an empty collection without creating it.
func (s *Store) Load(ctx context.Context) (core.Collection, error) {
	if _, err := os.Stat(s.Path); os.IsNotExist(err) {
		return core.Collection{}, nil
	}

	db, err := s.open(ctx)
	if err != nil {
		return nil, &core.StorageError{Op: "load", Kind: core.KindOpen, Path: s.Path, Err: err}
	}

	rows, err := db.QueryContext(ctx, `SELECT id, title, content, created, edited FROM notes ORDER BY position`)
	if err != nil {
		return nil, &core.StorageError{Op: "load", Kind: core.KindOpen, Path: s.Path, Err: err}
	}
	defer rows.Close()

	notes := core.Collection{}
	for rows.Next() {
		var n core.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Created, &n.Edited); err != nil {
			return nil, &core.StorageError{Op: "load", Kind: core.KindParse, Path: s.Path, Err: err}
		}
		if n.Created < 0 || n.Edited < 0 {
			return nil, &core.StorageError{Op: "load", Kind: core.KindParse, Path: s.Path,
				Err: fmt.Errorf("note %q has a negative timestamp", n.ID)}
		}
		if n.Edited < n.Created {
			return nil, &core.StorageError{Op: "load", Kind: core.KindParse, Path: s.Path,
				Err: fmt.Errorf("note %q was edited before it was created", n.ID)}
		}
		if n.ID == "" {
			n.ID = core.NewID()
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, &core.StorageError{Op: "load", Kind: core.KindParse, Path: s.Path, Err: err}
	}

	s.logger.Debug("notes loaded", "path", s.Path, "count", len(notes))
	return notes, nil
}

// Save replaces every row with notes.
func (s *Store) Save(ctx context.Context, notes core.Collection) (err error) {
	if s.readOnly {
		return &core.StorageError{Op: "save", Kind: core.KindWrite, Path: s.Path, Err: core.ErrReadOnly}
	}

	wrap := func(err error) error {
		return &core.StorageError{Op: "save", Kind: core.KindWrite, Path: s.Path, Err: err}
	}
	notes.EnsureIDs()

	db, err := s.open(ctx)
	if err != nil {
		return wrap(err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return wrap(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM notes`); err != nil {
		return wrap(err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO notes (position, id, title, content, created, edited) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return wrap(err)
	}
	defer stmt.Close()

	for i, n := range notes {
		if _, err = stmt.ExecContext(ctx, i, n.ID, n.Title, n.Content, n.Created, n.Edited); err != nil {
			return wrap(fmt.Errorf("note %d: %w", i, err))
		}
	}

	if err = tx.Commit(); err != nil {
		return wrap(err)
	}

	s.logger.Debug("notes saved", "path", s.Path, "count", len(notes))
	return nil
}

// Close releases the database connection, if one was opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "sqlite-store"
}

var _ core.Store = (*Store)(nil)
