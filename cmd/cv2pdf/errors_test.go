package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	cv2pdf "github.com/alnah/go-cv2pdf"
)

func TestErrorClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "missing file",
			err:  fmt.Errorf("input file not found: %q: %w", "x.yaml", os.ErrNotExist),
			want: "not found",
		},
		{
			name: "compile timeout",
			err:  fmt.Errorf("%w: xelatex did not finish", cv2pdf.ErrCompileTimeout),
			want: "timeout",
		},
		{
			name: "no engine",
			err:  cv2pdf.ErrNoEngine,
			want: "compile error",
		},
		{
			name: "engine unavailable",
			err:  fmt.Errorf("%w: %q", cv2pdf.ErrEngineUnavailable, "docker"),
			want: "compile error",
		},
		{
			name: "compilation failed",
			err:  fmt.Errorf("%w: no PDF", cv2pdf.ErrCompilation),
			want: "compile error",
		},
		{
			name: "unknown document type",
			err:  fmt.Errorf("%w: %q", cv2pdf.ErrDocumentTypeNotFound, "invoice"),
			want: "render error",
		},
		{
			name: "render failure",
			err:  fmt.Errorf("%w: resume", cv2pdf.ErrRender),
			want: "render error",
		},
		{
			name: "unknown family",
			err:  cv2pdf.ErrTemplateFamilyNotFound,
			want: "config error",
		},
		{
			name: "missing template dir",
			err:  cv2pdf.ErrTemplateDirNotFound,
			want: "config error",
		},
		{
			name: "unknown engine name",
			err:  cv2pdf.ErrUnknownEngine,
			want: "config error",
		},
		{
			name: "usage error",
			err:  ErrNoInput,
			want: "config error",
		},
		{
			name: "data parse error",
			err:  fmt.Errorf("%w: line 3", ErrDataParse),
			want: "config error",
		},
		{
			name: "anything else",
			err:  errors.New("boom"),
			want: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := errorClass(tt.err); got != tt.want {
				t.Errorf("errorClass(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
