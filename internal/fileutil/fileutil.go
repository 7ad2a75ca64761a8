// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"os"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Move renames src to dst, falling back to copy-and-remove when rename
// fails (e.g., when src and dst are on different filesystems).
func Move(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	content, err := os.ReadFile(src) // #nosec G304 -- paths come from the caller
	if err != nil {
		return fmt.Errorf("reading %q: %w", src, err)
	}
	if err := os.WriteFile(dst, content, 0o644); err != nil { // #nosec G306 -- moved artifact keeps conventional permissions
		return fmt.Errorf("writing %q: %w", dst, err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("removing %q: %w", src, err)
	}
	return nil
}
