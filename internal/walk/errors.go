package walk

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

var (
	// ErrPathNotFound is returned when a scan root does not exist.
	ErrPathNotFound = errors.New("path does not exist")
	// ErrNotADirectory is returned when a scan root is not a directory.
	ErrNotADirectory = errors.New("not a directory")
)

// ValidateRoot checks that path exists and is a directory, and returns its absolute form.
func ValidateRoot(path string) (string, error) {
	info, err := NewProbe(nil).Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("accessing path %q: %w", path, ErrPathNotFound)
		}

		return "", fmt.Errorf("accessing path %q: %w", path, err)
	}

	if !info.IsDir {
		return "", fmt.Errorf("path %q: %w", path, ErrNotADirectory)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	return abs, nil
}
