package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/scribe/pkg/core"
)

// DefaultFileName is the notes file used when no path is configured.
const DefaultFileName = "notes.json"

// Store implements core.Store on a single file holding the whole collection.
type Store struct {
	Path       string
	absPath    string
	serializer Serializer
	config     Config

	mu            sync.RWMutex
	watcherActive bool
	lastLoad      *time.Time
	lastSave      *time.Time
}

// Config holds the configuration for the file store.
type Config struct {
	Path         string
	Logger       *slog.Logger
	Serializer   Serializer  // Defaults to the serializer matching the extension of Path.
	Perm         os.FileMode // Defaults to 0644.
	ReadOnly     bool
	ErrorHandler func(error) // Receives watcher failures; defaults to logging.
}

// NewStore creates a file-backed store. Nothing is read or written until Load or Save.
func NewStore(config Config) (*Store, error) {
	if config.Path == "" {
		config.Path = DefaultFileName
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Perm == 0 {
		config.Perm = 0644
	}

	serializer := config.Serializer
	if serializer == nil {
		s, err := SerializerFor(config.Path)
		if err != nil {
			return nil, err
		}
		serializer = s
	}

	abs, err := filepath.Abs(config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve notes path: %w", err)
	}

	return &Store{
		Path:       config.Path,
		absPath:    abs,
		serializer: serializer,
		config:     config,
	}, nil
}

// Load reads and decodes the notes file.
// A missing file is the first-run state and yields an empty collection.
func (s *Store) Load(ctx context.Context) (core.Collection, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		s.config.Logger.Debug("notes file not found, starting empty", "path", s.Path)
		s.recordLoad()
		return core.Collection{}, nil
	}
	if err != nil {
		return nil, &core.StorageError{Op: "load", Kind: core.KindOpen, Path: s.Path, Err: err}
	}

	notes, err := s.serializer.Decode(data)
	if err != nil {
		return nil, &core.StorageError{Op: "load", Kind: core.KindParse, Path: s.Path, Err: err}
	}

	s.recordLoad()
	s.config.Logger.Debug("notes loaded", "path", s.Path, "count", len(notes))
	return notes, nil
}

// Save encodes notes and replaces the notes file atomically.
// The parent directory is not created.
func (s *Store) Save(ctx context.Context, notes core.Collection) error {
	if s.config.ReadOnly {
		return &core.StorageError{Op: "save", Kind: core.KindWrite, Path: s.Path, Err: core.ErrReadOnly}
	}
	if notes == nil {
		notes = core.Collection{}
	}
	notes.EnsureIDs()

	data, err := s.serializer.Encode(notes)
	if err != nil {
		return &core.StorageError{Op: "save", Kind: core.KindSerialize, Path: s.Path, Err: err}
	}

	if err := writeFileAtomic(s.Path, data, s.config.Perm); err != nil {
		return &core.StorageError{Op: "save", Kind: core.KindWrite, Path: s.Path, Err: err}
	}

	s.recordSave()
	s.config.Logger.Debug("notes saved", "path", s.Path, "count", len(notes))
	return nil
}

func (s *Store) recordLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.lastLoad = &now
}

func (s *Store) recordSave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.lastSave = &now
}

var _ core.Store = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
