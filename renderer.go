package cv2pdf

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/alnah/go-cv2pdf/internal/assets"
)

// DefaultFamily is the template family used when none is selected.
const DefaultFamily = "awesome-cv"

// documentTypeCandidates is the fixed list probed when listing which
// document types a family provides. Extending the core set means adding
// a name here and shipping the matching template.
var documentTypeCandidates = []string{"resume", "cv", "coverletter"}

// AvailableFamilies lists the bundled template families.
func AvailableFamilies() []string {
	return assets.Families()
}

// Renderer renders document data into LaTeX text using a template family.
type Renderer struct {
	family      string
	templateDir string
	tmpl        *template.Template
}

// RendererOption customizes a Renderer.
type RendererOption func(*Renderer)

// WithFamily selects a bundled template family (default: awesome-cv).
func WithFamily(name string) RendererOption {
	return func(r *Renderer) { r.family = name }
}

// WithTemplateDir loads templates from a filesystem directory instead of
// the bundled set. The directory overrides the bundled templates entirely.
func WithTemplateDir(dir string) RendererOption {
	return func(r *Renderer) { r.templateDir = dir }
}

// NewRenderer creates a Renderer and compiles the family's templates.
// An unknown family or a missing custom directory fails here, before any
// rendering is attempted.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	r := &Renderer{family: DefaultFamily}
	for _, opt := range opts {
		opt(r)
	}

	var fsys fs.FS
	if r.templateDir != "" {
		info, err := os.Stat(r.templateDir)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("%w: %q", ErrTemplateDirNotFound, r.templateDir)
		}
		fsys = os.DirFS(r.templateDir)
	} else {
		sub, err := assets.Family(r.family)
		if err != nil {
			return nil, fmt.Errorf("%w: %q (available: %s)",
				ErrTemplateFamilyNotFound, r.family, strings.Join(assets.Families(), ", "))
		}
		fsys = sub
	}

	tmpl, err := newTemplateEnv(fsys)
	if err != nil {
		if r.templateDir != "" {
			return nil, fmt.Errorf("%w: no templates in %q: %v", ErrTemplateDirNotFound, r.templateDir, err)
		}
		return nil, fmt.Errorf("%w: %q: %v", ErrTemplateFamilyNotFound, r.family, err)
	}

	r.tmpl = tmpl
	return r, nil
}

// Family returns the renderer's template family name.
func (r *Renderer) Family() string { return r.family }

// Render executes the docType template with data bound as top-level
// variables and returns the LaTeX text. When output is non-empty the text
// is also written there as UTF-8, creating parent directories as needed.
func (r *Renderer) Render(docType string, data Data, output string) (string, error) {
	tmpl := r.tmpl.Lookup(docType + templateExt)
	if tmpl == nil {
		return "", fmt.Errorf("%w: %q in family %q (available: %s)",
			ErrDocumentTypeNotFound, docType, r.family, strings.Join(r.DocumentTypes(), ", "))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(data)); err != nil {
		return "", fmt.Errorf("%w: %s with family %q: %v", ErrRender, docType, r.family, err)
	}

	text := buf.String()
	if output != "" {
		if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
		if err := os.WriteFile(output, []byte(text), 0o644); err != nil { // #nosec G306 -- rendered document, not a secret
			return "", fmt.Errorf("writing rendered document: %w", err)
		}
	}

	return text, nil
}

// DocumentTypes returns the subset of the candidate document types that
// resolve to a template in this renderer's set.
func (r *Renderer) DocumentTypes() []string {
	var available []string
	for _, docType := range documentTypeCandidates {
		if r.tmpl.Lookup(docType+templateExt) != nil {
			available = append(available, docType)
		}
	}
	return available
}
