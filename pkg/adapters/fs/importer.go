package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/scribe/pkg/core"
)

// importExtensions lists the text formats Import turns into notes.
var importExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// Import reads every text file under root matching pattern (doublestar
// syntax, e.g. "journal/**/*.md") and returns one note per file, in path
// order. The title comes from a frontmatter "title" key, falling back to
// the file name; the content is the body after the frontmatter.
func Import(root, pattern string) (core.Collection, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	fsys := os.DirFS(root)
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to glob %q: %w", pattern, err)
	}
	sort.Strings(matches)

	notes := make(core.Collection, 0, len(matches))
	for _, name := range matches {
		ext := strings.ToLower(path.Ext(name))
		if !importExtensions[ext] {
			continue
		}

		info, err := fs.Stat(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", name, err)
		}
		if info.IsDir() {
			continue
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		meta, body, err := parseFrontmatter(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		title, _ := meta["title"].(string)
		if strings.TrimSpace(title) == "" {
			title = strings.TrimSuffix(path.Base(name), path.Ext(name))
		}

		n := core.NewNote(title)
		n.Content = body
		notes = append(notes, n)
	}

	return notes, nil
}

// parseFrontmatter splits an optional leading YAML block from the body.
// The block opens and closes with a line that is exactly "---".
func parseFrontmatter(data []byte) (map[string]any, string, error) {
	meta := make(map[string]any)

	var rest []byte
	switch {
	case bytes.HasPrefix(data, []byte("---\n")):
		rest = data[4:]
	case bytes.HasPrefix(data, []byte("---\r\n")):
		rest = data[5:]
	default:
		return meta, string(data), nil
	}

	front, body, ok := splitAtDelimiter(rest)
	if !ok {
		return nil, "", errors.New("frontmatter started but no closing delimiter found")
	}

	if err := yaml.Unmarshal(front, &meta); err != nil {
		return nil, "", fmt.Errorf("failed to parse frontmatter: %w", err)
	}
	if meta == nil {
		meta = make(map[string]any)
	}

	return meta, string(body), nil
}

// splitAtDelimiter finds the first line of data that is exactly "---" and
// returns what precedes and follows it.
func splitAtDelimiter(data []byte) (front, body []byte, ok bool) {
	for off := 0; off < len(data); {
		line := data[off:]
		next := len(data)
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
			next = off + i + 1
		}
		if string(bytes.TrimSuffix(line, []byte("\r"))) == "---" {
			return data[:off], data[next:], true
		}
		off = next
	}
	return nil, nil, false
}
