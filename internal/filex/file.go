// Package filex contains small filesystem helpers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDataDir resolves (and creates if needed) the directory holding the
// client's local state. An absolute dir is used as-is; a relative one is
// placed under the user config dir, falling back to the working directory.
func EnsureDataDir(dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		base, err := os.UserConfigDir()
		if err != nil {
			base, err = os.Getwd()
			if err != nil {
				return "", fmt.Errorf("getwd: %w", err)
			}
		}
		dir = filepath.Join(base, dir)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// FileSize returns the size in bytes of the named file.
func FileSize(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}
