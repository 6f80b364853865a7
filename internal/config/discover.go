package config

import (
	"errors"
	"os"
	"path/filepath"
)

// FileName is the name of the configuration file looked up by Find.
const FileName = ".suitereport.yaml"

// ErrNotFound is returned when no configuration file exists in the start
// directory or any of its parents.
var ErrNotFound = errors.New(FileName + " not found in suite root or any parent")

// Find walks up from startDir until it finds a configuration file and
// returns its path.
func Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		path := filepath.Join(dir, FileName)
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", ErrNotFound
		}
		dir = parent
	}
}
