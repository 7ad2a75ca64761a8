package assets

import (
	"errors"
	"io/fs"
	"testing"
)

func TestFamilies(t *testing.T) {
	t.Parallel()

	families := Families()
	if len(families) == 0 {
		t.Fatal("expected at least one bundled family")
	}

	found := false
	for _, name := range families {
		if name == "awesome-cv" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected awesome-cv among %v", families)
	}
}

func TestFamily(t *testing.T) {
	t.Parallel()

	t.Run("bundled family resolves", func(t *testing.T) {
		t.Parallel()

		fsys, err := Family("awesome-cv")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, name := range []string{
			"resume.tex.tmpl",
			"cv.tex.tmpl",
			"coverletter.tex.tmpl",
			"awesome-cv.cls",
		} {
			if _, err := fs.Stat(fsys, name); err != nil {
				t.Errorf("expected %s in family: %v", name, err)
			}
		}
	})

	t.Run("unknown family", func(t *testing.T) {
		t.Parallel()

		_, err := Family("moderncv")
		if !errors.Is(err, ErrFamilyNotFound) {
			t.Fatalf("expected ErrFamilyNotFound, got %v", err)
		}
	})

	t.Run("invalid names rejected", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"", "../secrets", "a/b", `a\b`, ".."} {
			if _, err := Family(name); !errors.Is(err, ErrInvalidFamilyName) {
				t.Errorf("Family(%q) = %v, want ErrInvalidFamilyName", name, err)
			}
		}
	})
}
