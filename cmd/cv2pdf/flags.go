package main

import (
	"fmt"
	"io"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	cv2pdf "github.com/alnah/go-cv2pdf"
)

// cliFlags holds all flags for the cv2pdf command.
type cliFlags struct {
	docType     string
	output      string
	engine      string
	family      string
	templateDir string
	saveTex     bool
	texOnly     bool
	timeout     time.Duration
	quiet       bool
	version     bool
}

// newFlagSet builds the command's flag set bound to a fresh cliFlags.
func newFlagSet() (*flag.FlagSet, *cliFlags) {
	fs := flag.NewFlagSet("cv2pdf", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.docType, "doctype", "d", "resume", "document type: resume, cv, coverletter")
	fs.StringVarP(&f.output, "output", "o", "", "output file path (default: input name with .pdf)")
	fs.StringVarP(&f.engine, "engine", "e", "auto", "compilation engine: auto, xelatex, docker, docker-sudo")
	fs.StringVar(&f.family, "template", cv2pdf.DefaultFamily, "template family")
	fs.StringVar(&f.templateDir, "template-dir", "", "custom template directory (overrides bundled templates)")
	fs.BoolVar(&f.saveTex, "save-tex", false, "keep the intermediate .tex file alongside the PDF")
	fs.BoolVar(&f.texOnly, "tex-only", false, "render the .tex file without compiling a PDF")
	fs.DurationVarP(&f.timeout, "timeout", "t", cv2pdf.DefaultCompileTimeout, "compilation timeout (e.g., 30s, 2m)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	return fs, f
}

// parseFlags parses command-line flags and returns positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs, f := newFlagSet()
	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes the command usage with examples.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: cv2pdf [flags] <data.yaml | document.tex>

Generate CV/resume PDFs from YAML data, or compile existing .tex files.

YAML input (render + compile):
  cv2pdf resume.yaml                       generate resume.pdf
  cv2pdf data.yaml -d cv -o my_cv.pdf      pick document type and output
  cv2pdf resume.yaml --tex-only            render LaTeX without compiling
  cv2pdf data.yaml -e docker --save-tex    pick engine, keep the .tex

TEX input (compile only):
  cv2pdf resume.tex                        compile to resume.pdf
  cv2pdf document.tex -e xelatex -o out.pdf

Flags:
`)
	fs, _ := newFlagSet()
	fmt.Fprintln(w, fs.FlagUsages())
}
