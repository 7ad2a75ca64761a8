// Package assets provides the bundled LaTeX template families.
// Each family directory holds the document templates (*.tex.tmpl) plus
// the class files its documents require.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed templates
var templates embed.FS

// Sentinel errors for asset loading.
var (
	ErrFamilyNotFound    = errors.New("template family not bundled")
	ErrInvalidFamilyName = errors.New("invalid template family name")
)

// Families lists the bundled template family names, sorted.
func Families() []string {
	entries, err := fs.ReadDir(templates, "templates")
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Family returns the filesystem rooted at the named family's resources.
func Family(name string) (fs.FS, error) {
	if err := validateFamilyName(name); err != nil {
		return nil, err
	}

	dir := "templates/" + name
	if _, err := fs.Stat(templates, dir); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrFamilyNotFound, name)
	}
	return fs.Sub(templates, dir)
}

// validateFamilyName rejects names with path separators or traversal so a
// family name can never escape the embedded tree.
func validateFamilyName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidFamilyName, name)
	}
	return nil
}
