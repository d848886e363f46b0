package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/scribe/pkg/core"
)

// Serializer defines how a whole collection is encoded in a specific file format.
type Serializer interface {
	// Decode parses a collection document.
	Decode(data []byte) (core.Collection, error)
	// Encode converts the collection to a human-readable document.
	Encode(notes core.Collection) ([]byte, error)
	// Format names the encoding (e.g. "json").
	Format() string
}

// DefaultSerializers returns the standard set of serializers keyed by file extension.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".json": NewJSONSerializer(),
		".yaml": NewYAMLSerializer(),
		".yml":  NewYAMLSerializer(),
	}
}

// SerializerFor picks a serializer from the extension of path.
// Paths without an extension are treated as JSON.
func SerializerFor(path string) (Serializer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		ext = ".json"
	}
	s, ok := DefaultSerializers()[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported notes file extension %q", ext)
	}
	return s, nil
}

// record is the on-disk shape of a note. Pointers distinguish a missing
// field from its zero value so incomplete records are rejected.
type record struct {
	ID      string  `json:"id,omitempty" yaml:"id,omitempty"`
	Title   *string `json:"title" yaml:"title" validate:"required"`
	Content *string `json:"content" yaml:"content" validate:"required"`
	Created *int64  `json:"created" yaml:"created" validate:"required,gte=0"`
	Edited  *int64  `json:"edited" yaml:"edited" validate:"required,gte=0"`
}

var validate = validator.New()

func toRecords(notes core.Collection) []record {
	out := make([]record, len(notes))
	for i := range notes {
		n := notes[i]
		out[i] = record{
			ID:      n.ID,
			Title:   &n.Title,
			Content: &n.Content,
			Created: &n.Created,
			Edited:  &n.Edited,
		}
	}
	return out
}

// fromRecords validates decoded records and converts them to notes.
// Records written before notes carried an ID get a fresh one.
func fromRecords(records []record) (core.Collection, error) {
	notes := make(core.Collection, 0, len(records))
	for i, r := range records {
		if err := validate.Struct(r); err != nil {
			return nil, fmt.Errorf("note %d: %w", i, err)
		}
		if *r.Edited < *r.Created {
			return nil, fmt.Errorf("note %d: edited %d is before created %d", i, *r.Edited, *r.Created)
		}
		id := r.ID
		if id == "" {
			id = core.NewID()
		}
		notes = append(notes, core.Note{
			ID:      id,
			Title:   *r.Title,
			Content: *r.Content,
			Created: *r.Created,
			Edited:  *r.Edited,
		})
	}
	return notes, nil
}

// --- JSON Serializer ---

// JSONSerializer reads and writes a pretty-printed JSON array of notes.
type JSONSerializer struct{}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

func (s *JSONSerializer) Format() string { return "json" }

func (s *JSONSerializer) Decode(data []byte) (core.Collection, error) {
	var records []record
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if decoder.More() {
		return nil, fmt.Errorf("invalid json: trailing data after notes array")
	}
	if records == nil {
		return nil, fmt.Errorf("invalid json: expected an array of notes")
	}
	return fromRecords(records)
}

func (s *JSONSerializer) Encode(notes core.Collection) ([]byte, error) {
	data, err := json.MarshalIndent(toRecords(notes), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// --- YAML Serializer ---

// YAMLSerializer reads and writes a YAML sequence of notes.
type YAMLSerializer struct{}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

func (s *YAMLSerializer) Format() string { return "yaml" }

// Decode treats an empty document as an empty collection.
func (s *YAMLSerializer) Decode(data []byte) (core.Collection, error) {
	var records []record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return fromRecords(records)
}

func (s *YAMLSerializer) Encode(notes core.Collection) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(toRecords(notes)); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
