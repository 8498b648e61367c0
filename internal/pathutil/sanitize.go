package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// SanitizeOutputPath cleans an output file path and returns it in absolute
// form. Paths naming a symlink or an existing directory are rejected; a path
// that does not exist yet is accepted.
func SanitizeOutputPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("pathutil: empty output path")
	}
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("pathutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case os.IsNotExist(err):
		return abs, nil
	case err != nil:
		return "", fmt.Errorf("pathutil: cannot stat path: %w", err)
	case info.Mode()&os.ModeSymlink != 0:
		return "", fmt.Errorf("pathutil: refusing to write to symlink: %s", abs)
	case info.IsDir():
		return "", fmt.Errorf("pathutil: output path is a directory: %s", abs)
	}
	return abs, nil
}
