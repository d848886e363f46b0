package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// IsDevRun checks if the current process is running via `go run` or `go test`.
// It relies on the fact that these commands build binaries in temporary directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	tempDir := os.TempDir()
	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(tempDir)) {
		return true
	}

	if strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe") {
		return true
	}

	return false
}

// ResolveNotesPath determines the notes file to use based on safety rules.
// When forceTemp is set, paths outside the system temp directory are
// re-rooted under a namespaced dev directory there, keeping the file name.
func ResolveNotesPath(userPath string, forceTemp bool) string {
	if !forceTemp {
		if userPath == "" {
			return "notes.json"
		}
		return userPath
	}

	// Paths already inside the temp directory (e.g. t.TempDir()) are trusted.
	cleanUserPath := filepath.Clean(userPath)
	if filepath.IsAbs(cleanUserPath) {
		rel, err := filepath.Rel(os.TempDir(), cleanUserPath)
		if err == nil && !strings.HasPrefix(rel, "..") {
			return cleanUserPath
		}
	}

	name := filepath.Base(cleanUserPath)
	if userPath == "" || name == "." || name == string(os.PathSeparator) {
		name = "notes.json"
	}

	return filepath.Join(os.TempDir(), "scribe-dev", name)
}
