package cv2pdf

import (
	"io/fs"
	"text/template"
)

// Template naming and delimiters.
//
// Delimiters are non-default so template markup never collides with the
// LaTeX control characters (%, \, {, }). text/template uses a single
// action delimiter pair for expressions, blocks, and comments alike, so
// << >> covers all three: << .field >>, << if .x >>...<< end >>, and
// <</* comment */>>.
const (
	templateExt = ".tex.tmpl"
	delimLeft   = "<<"
	delimRight  = ">>"
)

// templateFuncs returns the filters registered in every template
// environment. latexEscape rewrites reserved characters into literal-safe
// escape sequences; markdown converts a Markdown field value to LaTeX.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"latexEscape": LatexEscape,
		"markdown":    MarkdownToLaTeX,
	}
}

// newTemplateEnv parses every *.tex.tmpl in fsys into a template set
// configured for LaTeX output. Auto-escaping is inherently off: this is
// text/template, not html/template, because the target markup is not HTML.
//
// Missing-key semantics stay at the default: a missing scalar renders as
// an inert placeholder and is falsy in conditionals, so templates guard
// optional sections with if/with; structural mismatches (ranging over a
// scalar, selecting a field of a scalar) fail the render.
func newTemplateEnv(fsys fs.FS) (*template.Template, error) {
	tmpl := template.New("cv2pdf").
		Delims(delimLeft, delimRight).
		Funcs(templateFuncs())
	return tmpl.ParseFS(fsys, "*"+templateExt)
}
