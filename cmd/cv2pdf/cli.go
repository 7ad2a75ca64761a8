package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/yamlutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput        = errors.New("usage: cv2pdf [flags] <data.yaml | document.tex>")
	ErrNotAFile       = errors.New("input is not a regular file")
	ErrDataParse      = errors.New("failed to parse data file")
	ErrDataNotMap     = errors.New("data file must contain a mapping")
	ErrTexOnlyWithTex = errors.New("--tex-only cannot be used with a .tex input")
)

// run parses arguments, dispatches on the input kind, and reports results
// on stdout. Errors go back to main for classified printing.
func run(args []string, stdout io.Writer) error {
	f, positional, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if f.version {
		fmt.Fprintln(stdout, Version)
		return nil
	}
	if len(positional) != 1 {
		return ErrNoInput
	}

	input := positional[0]
	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("input file not found: %q: %w", input, os.ErrNotExist)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %q", ErrNotAFile, input)
	}

	engine, err := cv2pdf.ParseEngine(f.engine)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if strings.EqualFold(filepath.Ext(input), ".tex") {
		return compileTex(ctx, f, engine, input, stdout)
	}
	return generate(ctx, f, engine, input, stdout)
}

// compileTex compiles an existing .tex file to PDF (compile-only mode).
func compileTex(ctx context.Context, f *cliFlags, engine cv2pdf.Engine, input string, stdout io.Writer) error {
	if f.texOnly {
		return ErrTexOnlyWithTex
	}

	output := f.output
	if output == "" {
		output = withExt(input, ".pdf")
	}

	if !f.quiet {
		fmt.Fprintf(stdout, "Compiling %s (engine: %s)\n", input, engine)
	}

	compiler := cv2pdf.NewCompiler(
		cv2pdf.WithEngine(engine),
		cv2pdf.WithCompileTimeout(f.timeout),
	)
	pdf, err := compiler.Compile(ctx, input, cv2pdf.CompileOptions{
		Output:        output,
		KeepArtifacts: f.saveTex,
	})
	if err != nil {
		return err
	}

	if !f.quiet {
		fmt.Fprintf(stdout, "Created %s\n", pdf)
	}
	return nil
}

// generate renders YAML data to LaTeX and, unless --tex-only, compiles it.
func generate(ctx context.Context, f *cliFlags, engine cv2pdf.Engine, input string, stdout io.Writer) error {
	data, err := loadData(input)
	if err != nil {
		return err
	}

	if f.texOnly {
		output := f.output
		if output == "" {
			output = withExt(input, ".tex")
		}

		if !f.quiet {
			fmt.Fprintf(stdout, "Rendering %s LaTeX from %s\n", f.docType, input)
		}

		rendererOpts := []cv2pdf.RendererOption{cv2pdf.WithFamily(f.family)}
		if f.templateDir != "" {
			rendererOpts = append(rendererOpts, cv2pdf.WithTemplateDir(f.templateDir))
		}
		renderer, err := cv2pdf.NewRenderer(rendererOpts...)
		if err != nil {
			return err
		}
		if _, err := renderer.Render(f.docType, data, output); err != nil {
			return err
		}

		if !f.quiet {
			fmt.Fprintf(stdout, "Created %s\n", output)
		}
		return nil
	}

	output := f.output
	if output == "" {
		output = withExt(input, ".pdf")
	}

	if !f.quiet {
		fmt.Fprintf(stdout, "Generating %s PDF from %s (engine: %s)\n", f.docType, input, engine)
	}

	pipeline := cv2pdf.NewPipeline(cv2pdf.WithTimeout(f.timeout))
	pdf, err := pipeline.Generate(ctx, data, cv2pdf.GenerateOptions{
		DocType:     f.docType,
		Family:      f.family,
		TemplateDir: f.templateDir,
		Output:      output,
		Engine:      engine,
		KeepTex:     f.saveTex,
	})
	if err != nil {
		return err
	}

	if !f.quiet {
		fmt.Fprintf(stdout, "Created %s\n", pdf)
		if f.saveTex {
			fmt.Fprintf(stdout, "LaTeX saved: %s\n", withExt(pdf, ".tex"))
		}
	}
	return nil
}

// loadData reads and parses a YAML data file into document data.
func loadData(path string) (cv2pdf.Data, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-supplied input file is the CLI's purpose
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	var data map[string]any
	if err := yamlutil.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataParse, err)
	}
	if data == nil {
		return nil, ErrDataNotMap
	}
	return cv2pdf.Data(data), nil
}

// withExt swaps the final extension of path for ext.
func withExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
