package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "regular file", path: file, want: true},
		{name: "missing file", path: filepath.Join(dir, "absent.txt"), want: false},
		{name: "directory", path: dir, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestMove(t *testing.T) {
	t.Parallel()

	t.Run("moves content and removes source", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := filepath.Join(dir, "src.pdf")
		dst := filepath.Join(dir, "dst.pdf")
		if err := os.WriteFile(src, []byte("%PDF"), 0o644); err != nil {
			t.Fatalf("writing source: %v", err)
		}

		if err := Move(src, dst); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(dst)
		if err != nil {
			t.Fatalf("reading destination: %v", err)
		}
		if string(content) != "%PDF" {
			t.Errorf("unexpected content: %q", content)
		}
		if _, err := os.Stat(src); err == nil {
			t.Error("source should be gone after move")
		}
	})

	t.Run("missing source fails", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		err := Move(filepath.Join(dir, "absent"), filepath.Join(dir, "dst"))
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
