package scribe_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/scribe"
)

func TestReadHome(t *testing.T) {
	dir := t.TempDir()

	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "Missing File", path: filepath.Join(dir, "missing.txt"), want: scribe.HomePlaceholder},
		{name: "No Path", path: "", want: scribe.HomePlaceholder},
		{name: "Whitespace Only", path: write("blank.txt", " \n\t\n"), want: scribe.HomePlaceholder},
		{name: "Trimmed Verbatim", path: write("home.txt", "\n  Welcome!\n\nKeep notes short.  \n"), want: "Welcome!\n\nKeep notes short."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scribe.ReadHome(tt.path); got != tt.want {
				t.Errorf("ReadHome(%q) = %q; want %q", tt.path, got, tt.want)
			}
		})
	}
}
