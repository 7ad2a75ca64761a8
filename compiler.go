package cv2pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-cv2pdf/internal/fileutil"
)

// Engine selects how a LaTeX document is compiled to PDF.
type Engine string

// Available compilation engines.
const (
	EngineAuto       Engine = "auto"        // probe xelatex, then docker
	EngineXeLaTeX    Engine = "xelatex"     // local xelatex binary
	EngineDocker     Engine = "docker"      // texlive container
	EngineDockerSudo Engine = "docker-sudo" // texlive container via sudo
)

// ParseEngine validates an engine name from user input.
func ParseEngine(s string) (Engine, error) {
	switch e := Engine(s); e {
	case EngineAuto, EngineXeLaTeX, EngineDocker, EngineDockerSudo:
		return e, nil
	}
	return "", fmt.Errorf("%w: %q (valid: %s, %s, %s, %s)",
		ErrUnknownEngine, s, EngineAuto, EngineXeLaTeX, EngineDocker, EngineDockerSudo)
}

// DefaultCompileTimeout bounds a single toolchain invocation.
const DefaultCompileTimeout = 60 * time.Second

const (
	dockerImage = "texlive/texlive:latest"

	texExt = ".tex"
	pdfExt = ".pdf"
	logExt = ".log"

	// latexErrorMarker starts error lines in a LaTeX build log.
	latexErrorMarker = "!"
	maxLogErrors     = 5

	// sudoWarmTimeout bounds the best-effort credential refresh before a
	// sudo docker run.
	sudoWarmTimeout = 5 * time.Second
)

// artifactExtensions lists the auxiliary byproducts xelatex leaves next
// to the document. Configuration data rather than logic: adjust when a
// toolchain with different byproducts is adopted.
var artifactExtensions = []string{
	".aux", ".log", ".out", ".toc", ".fls", ".fdb_latexmk", ".synctex.gz",
}

// commandRunner abstracts subprocess execution so compilation is testable
// without a real toolchain.
type commandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (stdout, stderr string, err error)
}

// execRunner implements commandRunner using os/exec. A context deadline
// terminates the process; the deadline error is surfaced in place of the
// resulting kill error.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, dir, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	return stdout.String(), stderr.String(), err
}

// Compiler compiles LaTeX documents to PDF via a local xelatex binary or
// a texlive container.
type Compiler struct {
	engine    Engine
	timeout   time.Duration
	artifacts []string
	runner    commandRunner
	lookPath  func(file string) (string, error)
}

// CompilerOption customizes a Compiler.
type CompilerOption func(*Compiler)

// WithEngine selects the compilation engine (default: EngineAuto).
func WithEngine(e Engine) CompilerOption {
	return func(c *Compiler) { c.engine = e }
}

// WithCompileTimeout bounds each toolchain invocation
// (default: DefaultCompileTimeout).
func WithCompileTimeout(d time.Duration) CompilerOption {
	return func(c *Compiler) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithArtifactExtensions overrides the auxiliary byproduct extensions
// removed after compilation.
func WithArtifactExtensions(exts ...string) CompilerOption {
	return func(c *Compiler) { c.artifacts = exts }
}

// NewCompiler creates a Compiler with default configuration.
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		engine:    EngineAuto,
		timeout:   DefaultCompileTimeout,
		artifacts: artifactExtensions,
		runner:    execRunner{},
		lookPath:  exec.LookPath,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Available reports whether the engine's toolchain is on the path.
func (c *Compiler) Available(e Engine) bool {
	switch e {
	case EngineXeLaTeX:
		_, err := c.lookPath("xelatex")
		return err == nil
	case EngineDocker, EngineDockerSudo:
		_, err := c.lookPath("docker")
		return err == nil
	}
	return false
}

// DetectEngine picks the best available engine. Priority: xelatex, then
// docker. Returns ErrNoEngine with install instructions when neither is
// present.
func (c *Compiler) DetectEngine() (Engine, error) {
	if c.Available(EngineXeLaTeX) {
		return EngineXeLaTeX, nil
	}
	if c.Available(EngineDocker) {
		return EngineDocker, nil
	}
	return "", fmt.Errorf("%w; install one of:\n"+
		"  - texlive-xetex: sudo apt install texlive-xetex\n"+
		"  - Docker: https://docs.docker.com/get-docker/", ErrNoEngine)
}

// CompileOptions controls a single Compile call.
type CompileOptions struct {
	// Output moves the PDF to this path after compilation. Empty keeps
	// the toolchain's default location next to the source document.
	Output string
	// KeepArtifacts skips deletion of auxiliary byproducts (.aux, .log, ...).
	KeepArtifacts bool
}

// Compile compiles texFile to PDF and returns the PDF path.
//
// Success means the PDF exists on disk after the toolchain returns; the
// process exit status is deliberately ignored because LaTeX toolchains
// exit nonzero on mere warnings while still emitting valid output.
func (c *Compiler) Compile(ctx context.Context, texFile string, opts CompileOptions) (string, error) {
	if !fileutil.FileExists(texFile) {
		return "", fmt.Errorf("tex file not found: %q: %w", texFile, os.ErrNotExist)
	}

	engine := c.engine
	if engine == EngineAuto {
		detected, err := c.DetectEngine()
		if err != nil {
			return "", err
		}
		engine = detected
	} else if !c.Available(engine) {
		return "", fmt.Errorf("%w: %q", ErrEngineUnavailable, engine)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var pdfPath string
	var err error
	switch engine {
	case EngineXeLaTeX:
		pdfPath, err = c.compileXeLaTeX(ctx, texFile)
	case EngineDocker:
		pdfPath, err = c.compileDocker(ctx, texFile, false)
	case EngineDockerSudo:
		pdfPath, err = c.compileDocker(ctx, texFile, true)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
	if err != nil {
		return "", err
	}

	if opts.Output != "" && opts.Output != pdfPath {
		if mkErr := os.MkdirAll(filepath.Dir(opts.Output), 0o755); mkErr != nil {
			return "", fmt.Errorf("creating output directory: %w", mkErr)
		}
		if mvErr := fileutil.Move(pdfPath, opts.Output); mvErr != nil {
			return "", fmt.Errorf("moving PDF to %q: %w", opts.Output, mvErr)
		}
		pdfPath = opts.Output
	}

	if !opts.KeepArtifacts {
		c.cleanupArtifacts(texFile)
	}

	return pdfPath, nil
}

// compileXeLaTeX runs the local xelatex binary inside the document's
// directory.
func (c *Compiler) compileXeLaTeX(ctx context.Context, texFile string) (string, error) {
	dir := filepath.Dir(texFile)
	_, _, err := c.runner.Run(ctx, dir, "xelatex", "-interaction=nonstopmode", filepath.Base(texFile))
	if errors.Is(err, context.DeadlineExceeded) {
		return "", fmt.Errorf("%w: xelatex did not finish within %s", ErrCompileTimeout, c.timeout)
	}

	pdfPath := replaceExt(texFile, pdfExt)
	if !fileutil.FileExists(pdfPath) {
		logPath := replaceExt(texFile, logExt)
		return "", fmt.Errorf("%w: xelatex produced no PDF:\n%s\nsee %s for details",
			ErrCompilation, extractLatexErrors(logPath), logPath)
	}
	return pdfPath, nil
}

// compileDocker runs xelatex inside the texlive container with the
// document's directory bind-mounted. Without sudo the container runs under
// the caller's uid:gid so the output is not root-owned.
func (c *Compiler) compileDocker(ctx context.Context, texFile string, useSudo bool) (string, error) {
	dir, err := filepath.Abs(filepath.Dir(texFile))
	if err != nil {
		return "", fmt.Errorf("resolving document directory: %w", err)
	}

	args := []string{
		"run", "--rm",
		"--user", fmt.Sprintf("%d:%d", os.Getuid(), os.Getgid()),
		"-i",
		"-w", "/doc",
		"-v", dir + ":/doc",
		dockerImage,
		"xelatex", "-interaction=nonstopmode", filepath.Base(texFile),
	}
	name := "docker"
	if useSudo {
		// Refresh cached sudo credentials so the docker run below does not
		// stall on a password prompt. Best-effort: failure is ignored.
		warmCtx, cancel := context.WithTimeout(ctx, sudoWarmTimeout)
		_, _, _ = c.runner.Run(warmCtx, dir, "sudo", "-v")
		cancel()

		args = append([]string{"docker"}, args...)
		name = "sudo"
	}

	stdout, stderr, err := c.runner.Run(ctx, dir, name, args...)
	if errors.Is(err, context.DeadlineExceeded) {
		return "", fmt.Errorf("%w: docker compilation did not finish within %s", ErrCompileTimeout, c.timeout)
	}

	pdfPath := replaceExt(texFile, pdfExt)
	if !fileutil.FileExists(pdfPath) {
		output := stderr
		if output == "" {
			output = stdout
		}
		return "", fmt.Errorf("%w: docker produced no PDF:\n%s\ncommand: %s %s",
			ErrCompilation, output, name, strings.Join(args, " "))
	}
	return pdfPath, nil
}

// extractLatexErrors scans a LaTeX build log for error lines (those
// starting with "!") and returns up to maxLogErrors of them.
func extractLatexErrors(logPath string) string {
	content, err := os.ReadFile(logPath) // #nosec G304 -- path derived from the caller's document path
	if err != nil {
		return "no log file generated"
	}

	var errLines []string
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, latexErrorMarker) {
			errLines = append(errLines, line)
			if len(errLines) == maxLogErrors {
				break
			}
		}
	}
	if len(errLines) == 0 {
		return "unknown LaTeX error"
	}
	return strings.Join(errLines, "\n")
}

// cleanupArtifacts removes auxiliary toolchain byproducts next to the
// document. Cosmetic cleanup: deletion failures are ignored.
func (c *Compiler) cleanupArtifacts(texFile string) {
	for _, ext := range c.artifacts {
		_ = os.Remove(replaceExt(texFile, ext))
	}
}

// replaceExt swaps the final extension of path for ext.
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
