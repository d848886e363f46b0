package scribe

import (
	"os"
	"strings"
)

// HomePlaceholder is shown when there is no home text to display.
const HomePlaceholder = "Select a note or create a new one."

// ReadHome returns the trimmed contents of the home text file at path.
// A missing, unreadable or blank file yields HomePlaceholder.
func ReadHome(path string) string {
	if path == "" {
		return HomePlaceholder
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return HomePlaceholder
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return HomePlaceholder
	}
	return text
}
