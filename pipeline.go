package cv2pdf

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-cv2pdf/internal/assets"
	"github.com/alnah/go-cv2pdf/internal/fileutil"
)

// intermediateName is the rendered document's filename inside a temporary
// working directory.
const intermediateName = "document.tex"

// familyAssets maps a template family to the auxiliary resource files the
// toolchain needs alongside the rendered document. Configuration data:
// extend when adding a family.
var familyAssets = map[string][]string{
	"awesome-cv": {"awesome-cv.cls"},
}

// texCompiler is the compilation stage as seen by the pipeline.
// Satisfied by *Compiler; tests substitute fakes.
type texCompiler interface {
	Compile(ctx context.Context, texFile string, opts CompileOptions) (string, error)
}

// Pipeline composes rendering, asset copying, and compilation into a
// single data-to-PDF call.
type Pipeline struct {
	timeout  time.Duration
	compiler texCompiler
}

// PipelineOption customizes a Pipeline.
type PipelineOption func(*Pipeline)

// WithTimeout bounds each compilation invocation
// (default: DefaultCompileTimeout).
func WithTimeout(d time.Duration) PipelineOption {
	return func(p *Pipeline) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// NewPipeline creates a Pipeline with default configuration.
func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{timeout: DefaultCompileTimeout}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GenerateOptions controls a single Generate call.
type GenerateOptions struct {
	// DocType selects the template within the family (default: "resume").
	DocType string
	// Family selects the template family (default: DefaultFamily).
	Family string
	// TemplateDir overrides the bundled template set with a directory.
	TemplateDir string
	// Output is the final PDF path (default: "output.pdf").
	Output string
	// Engine selects the compilation engine (default: EngineAuto).
	Engine Engine
	// KeepTex renders the intermediate document next to the PDF and keeps
	// it, plus the toolchain byproducts, after compilation.
	KeepTex bool
}

// Generate renders data into a LaTeX document, copies the family's
// auxiliary resources next to it, compiles it, and moves the PDF to the
// requested output path.
//
// Without KeepTex the intermediates live in a fresh temporary directory,
// which is removed only when the final PDF exists: failed runs keep their
// working directory for post-mortem debugging, at the cost of leaking it.
func (p *Pipeline) Generate(ctx context.Context, data Data, opts GenerateOptions) (string, error) {
	if opts.DocType == "" {
		opts.DocType = "resume"
	}
	if opts.Family == "" {
		opts.Family = DefaultFamily
	}
	if opts.Output == "" {
		opts.Output = "output" + pdfExt
	}
	if opts.Engine == "" {
		opts.Engine = EngineAuto
	}

	outputPath, err := filepath.Abs(opts.Output)
	if err != nil {
		return "", fmt.Errorf("resolving output path: %w", err)
	}

	var texFile, workDir, cleanupDir string
	if opts.KeepTex {
		workDir = filepath.Dir(outputPath)
		if err := os.MkdirAll(workDir, 0o755); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
		texFile = replaceExt(outputPath, texExt)
	} else {
		tmpDir, err := os.MkdirTemp("", "cv2pdf-")
		if err != nil {
			return "", fmt.Errorf("creating working directory: %w", err)
		}
		workDir = tmpDir
		texFile = filepath.Join(tmpDir, intermediateName)
		cleanupDir = tmpDir
	}

	var pdfPath string
	defer func() {
		if cleanupDir != "" && pdfPath != "" && fileutil.FileExists(pdfPath) {
			_ = os.RemoveAll(cleanupDir)
		}
	}()

	rendererOpts := []RendererOption{WithFamily(opts.Family)}
	if opts.TemplateDir != "" {
		rendererOpts = append(rendererOpts, WithTemplateDir(opts.TemplateDir))
	}
	renderer, err := NewRenderer(rendererOpts...)
	if err != nil {
		return "", err
	}
	if _, err := renderer.Render(opts.DocType, data, texFile); err != nil {
		return "", err
	}

	copyFamilyAssets(opts.Family, opts.TemplateDir, workDir)

	compiler := p.compiler
	if compiler == nil {
		compiler = NewCompiler(WithEngine(opts.Engine), WithCompileTimeout(p.timeout))
	}
	// Compile in place first; relocation below leaves the byproducts next
	// to the intermediate document.
	compiled, err := compiler.Compile(ctx, texFile, CompileOptions{KeepArtifacts: opts.KeepTex})
	if err != nil {
		return "", err
	}

	if compiled != outputPath {
		if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
		if err := fileutil.Move(compiled, outputPath); err != nil {
			return "", fmt.Errorf("moving PDF to %q: %w", outputPath, err)
		}
	}

	pdfPath = outputPath
	return outputPath, nil
}

// GeneratePDF renders data as docType and compiles it to output using
// defaults: bundled awesome-cv templates and an auto-detected engine.
func GeneratePDF(ctx context.Context, data Data, docType, output string) (string, error) {
	return NewPipeline().Generate(ctx, data, GenerateOptions{DocType: docType, Output: output})
}

// copyFamilyAssets copies the family's auxiliary resources (class files)
// into the working directory. Best-effort: any failure is ignored, since
// compilation can still succeed when the resources are already present.
func copyFamilyAssets(family, templateDir, workDir string) {
	var fsys fs.FS
	if templateDir != "" {
		fsys = os.DirFS(templateDir)
	} else {
		sub, err := assets.Family(family)
		if err != nil {
			return
		}
		fsys = sub
	}

	for _, name := range familyAssets[family] {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			continue
		}
		_ = os.WriteFile(filepath.Join(workDir, name), content, 0o644) // #nosec G306 -- class file, not a secret
	}
}
