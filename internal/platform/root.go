package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// ConfigFileName is the project configuration file looked up by FindConfig.
const ConfigFileName = "scribe.yaml"

// ErrConfigNotFound is returned by FindConfig when no configuration file exists
// in startDir or any of its parents.
var ErrConfigNotFound = errors.New("config file not found")

// FindConfig looks upwards from startDir for a scribe.yaml file and returns
// its absolute path.
func FindConfig(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrConfigNotFound
}
