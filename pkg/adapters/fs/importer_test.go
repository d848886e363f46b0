package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	full := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(body), 0644))
}

func TestImport(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "journal/2024/day-1.md", "---\ntitle: First Day\ntags: [a]\n---\nWent hiking.")
	writeFile(t, root, "journal/2024/day-2.md", "No frontmatter here.")
	writeFile(t, root, "journal/todo.txt", "buy milk")
	writeFile(t, root, "journal/image.png", "binary")
	writeFile(t, root, "other/skip.md", "outside pattern")

	t.Run("Recursive Pattern", func(t *testing.T) {
		notes, err := Import(root, "journal/**/*")
		require.NoError(t, err)
		require.Len(t, notes, 3)

		assert.Equal(t, "First Day", notes[0].Title)
		assert.Equal(t, "Went hiking.", notes[0].Content)
		assert.Equal(t, "day-2", notes[1].Title)
		assert.Equal(t, "No frontmatter here.", notes[1].Content)
		assert.Equal(t, "todo", notes[2].Title)

		for _, n := range notes {
			assert.NotEmpty(t, n.ID)
			assert.Equal(t, n.Created, n.Edited)
		}
	})

	t.Run("Extension Pattern", func(t *testing.T) {
		notes, err := Import(root, "**/*.md")
		require.NoError(t, err)
		assert.Len(t, notes, 3)
	})

	t.Run("Invalid Pattern", func(t *testing.T) {
		_, err := Import(root, "journal/[")
		assert.Error(t, err)
	})

	t.Run("Unclosed Frontmatter", func(t *testing.T) {
		bad := t.TempDir()
		writeFile(t, bad, "broken.md", "---\ntitle: Oops\nno closing")
		_, err := Import(bad, "*.md")
		assert.Error(t, err)
	})
}

func TestParseFrontmatter(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTitle string
		wantBody  string
		wantErr   bool
	}{
		{name: "Basic Frontmatter", input: "---\ntitle: Hello\n---\n# Body", wantTitle: "Hello", wantBody: "# Body"},
		{name: "No Frontmatter", input: "# Just Markdown", wantBody: "# Just Markdown"},
		{name: "Empty Frontmatter", input: "---\n---\nBody", wantBody: "Body"},
		{name: "CRLF", input: "---\r\ntitle: Win\r\n---\r\nBody", wantTitle: "Win", wantBody: "Body"},
		{name: "Invalid YAML", input: "---\nkey: : value\n---\nContent", wantErr: true},
		{name: "Longer Dash Line Does Not Close", input: "---\ntitle: a\n----\nbody", wantErr: true},
		{name: "Dashes In Body Are Kept", input: "---\ntitle: a\n---\nbody\n----\nmore", wantTitle: "a", wantBody: "body\n----\nmore"},
		{name: "Closing Delimiter At End", input: "---\ntitle: a\n---", wantTitle: "a", wantBody: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body, err := parseFrontmatter([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFrontmatter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			title, _ := meta["title"].(string)
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}
