package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cv2pdf "github.com/alnah/go-cv2pdf"
)

// writeFile creates a file with the given content inside a fresh temp dir.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

const minimalYAML = `first_name: Ada
last_name: Lovelace
position: Engineer
email: ada@example.com
`

func TestRunArgumentErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    func(t *testing.T) []string
		wantErr error
	}{
		{
			name:    "no input",
			args:    func(t *testing.T) []string { return nil },
			wantErr: ErrNoInput,
		},
		{
			name: "two inputs",
			args: func(t *testing.T) []string {
				return []string{"a.yaml", "b.yaml"}
			},
			wantErr: ErrNoInput,
		},
		{
			name: "missing input file",
			args: func(t *testing.T) []string {
				return []string{filepath.Join(t.TempDir(), "absent.yaml")}
			},
			wantErr: os.ErrNotExist,
		},
		{
			name: "directory input",
			args: func(t *testing.T) []string {
				return []string{t.TempDir()}
			},
			wantErr: ErrNotAFile,
		},
		{
			name: "unknown engine",
			args: func(t *testing.T) []string {
				return []string{"-e", "pdflatex", writeFile(t, "data.yaml", minimalYAML)}
			},
			wantErr: cv2pdf.ErrUnknownEngine,
		},
		{
			name: "tex input with tex-only",
			args: func(t *testing.T) []string {
				return []string{"--tex-only", writeFile(t, "doc.tex", `\documentclass{article}`)}
			},
			wantErr: ErrTexOnlyWithTex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out strings.Builder
			err := run(tt.args(t), &out)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunDataErrors(t *testing.T) {
	t.Parallel()

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "data.yaml", "key: [unclosed")
		var out strings.Builder
		err := run([]string{"--tex-only", path}, &out)
		if !errors.Is(err, ErrDataParse) {
			t.Fatalf("expected ErrDataParse, got %v", err)
		}
	})

	t.Run("non-mapping yaml", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "data.yaml", "null\n")
		var out strings.Builder
		err := run([]string{"--tex-only", path}, &out)
		if !errors.Is(err, ErrDataNotMap) {
			t.Fatalf("expected ErrDataNotMap, got %v", err)
		}
	})

	t.Run("unknown document type", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "data.yaml", minimalYAML)
		var out strings.Builder
		err := run([]string{"--tex-only", "-d", "invoice", path}, &out)
		if !errors.Is(err, cv2pdf.ErrDocumentTypeNotFound) {
			t.Fatalf("expected ErrDocumentTypeNotFound, got %v", err)
		}
	})
}

func TestRunTexOnly(t *testing.T) {
	t.Parallel()

	t.Run("renders next to the input by default", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "resume.yaml", minimalYAML)
		var out strings.Builder
		if err := run([]string{"--tex-only", path}, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		texPath := strings.TrimSuffix(path, ".yaml") + ".tex"
		content, err := os.ReadFile(texPath)
		if err != nil {
			t.Fatalf("reading rendered document: %v", err)
		}
		for _, want := range []string{"Ada", "Lovelace", `\begin{document}`} {
			if !strings.Contains(string(content), want) {
				t.Errorf("rendered document missing %q", want)
			}
		}
		if !strings.Contains(out.String(), "Created") {
			t.Errorf("expected progress output, got %q", out.String())
		}
	})

	t.Run("explicit output path", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "resume.yaml", minimalYAML)
		output := filepath.Join(t.TempDir(), "custom.tex")
		var out strings.Builder
		if err := run([]string{"--tex-only", "-o", output, path}, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(output); err != nil {
			t.Errorf("expected document at %q: %v", output, err)
		}
	})

	t.Run("quiet suppresses progress", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "resume.yaml", minimalYAML)
		var out strings.Builder
		if err := run([]string{"--tex-only", "-q", path}, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.String() != "" {
			t.Errorf("expected no output with --quiet, got %q", out.String())
		}
	})
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	if err := run([]string{"--version"}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Errorf("expected version %q, got %q", Version, out.String())
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	if err := run([]string{"--help"}, &out); err != nil {
		t.Fatalf("expected --help to exit cleanly, got %v", err)
	}
}

func TestWithExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		ext  string
		want string
	}{
		{name: "yaml to pdf", path: "resume.yaml", ext: ".pdf", want: "resume.pdf"},
		{name: "yaml to tex", path: "data/resume.yaml", ext: ".tex", want: "data/resume.tex"},
		{name: "no extension", path: "resume", ext: ".pdf", want: "resume.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := withExt(tt.path, tt.ext); got != tt.want {
				t.Errorf("withExt(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
			}
		})
	}
}
