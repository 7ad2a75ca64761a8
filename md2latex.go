package cv2pdf

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownToLaTeX converts Markdown text to LaTeX markup. It backs the
// "markdown" template filter so free-form fields (summaries, cover letter
// bodies) can use emphasis, lists, and links.
//
// Text content is escaped with LatexEscape; structure maps to the closest
// LaTeX form (itemize/enumerate, \emph, \textbf, \texttt, \href, quote and
// verbatim environments). Raw HTML has no LaTeX rendering and is dropped.
func MarkdownToLaTeX(source string) string {
	src := []byte(source)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var buf strings.Builder
	writeLatexNode(&buf, doc, src)
	return strings.TrimRight(buf.String(), "\n")
}

func writeLatexChildren(w *strings.Builder, n ast.Node, src []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		writeLatexNode(w, c, src)
	}
}

func writeLatexNode(w *strings.Builder, n ast.Node, src []byte) {
	switch node := n.(type) {
	case *ast.Document:
		writeLatexChildren(w, node, src)

	case *ast.Paragraph:
		writeLatexChildren(w, node, src)
		w.WriteString("\n\n")

	case *ast.TextBlock:
		// Tight list item content.
		writeLatexChildren(w, node, src)

	case *ast.Heading:
		w.WriteString(`\` + headingCommand(node.Level) + `{`)
		writeLatexChildren(w, node, src)
		w.WriteString("}\n\n")

	case *ast.Emphasis:
		if node.Level >= 2 {
			w.WriteString(`\textbf{`)
		} else {
			w.WriteString(`\emph{`)
		}
		writeLatexChildren(w, node, src)
		w.WriteString("}")

	case *ast.CodeSpan:
		w.WriteString(`\texttt{`)
		writeLatexChildren(w, node, src)
		w.WriteString("}")

	case *ast.Link:
		w.WriteString(`\href{` + escapeURL(string(node.Destination)) + `}{`)
		writeLatexChildren(w, node, src)
		w.WriteString("}")

	case *ast.AutoLink:
		w.WriteString(`\url{` + escapeURL(string(node.URL(src))) + `}`)

	case *ast.List:
		env := "itemize"
		if node.IsOrdered() {
			env = "enumerate"
		}
		w.WriteString(`\begin{` + env + "}\n")
		writeLatexChildren(w, node, src)
		w.WriteString(`\end{` + env + "}\n\n")

	case *ast.ListItem:
		w.WriteString(`\item `)
		writeLatexChildren(w, node, src)
		w.WriteString("\n")

	case *ast.Blockquote:
		w.WriteString("\\begin{quote}\n")
		writeLatexChildren(w, node, src)
		w.WriteString("\\end{quote}\n\n")

	case *ast.FencedCodeBlock:
		writeVerbatim(w, node, src)

	case *ast.CodeBlock:
		writeVerbatim(w, node, src)

	case *ast.ThematicBreak:
		w.WriteString("\\noindent\\hrulefill\n\n")

	case *ast.Text:
		w.WriteString(LatexEscape(string(node.Segment.Value(src))))
		switch {
		case node.HardLineBreak():
			w.WriteString("\\\\\n")
		case node.SoftLineBreak():
			w.WriteString("\n")
		}

	case *ast.String:
		w.WriteString(LatexEscape(string(node.Value)))

	case *ast.RawHTML, *ast.HTMLBlock:
		// Dropped.

	default:
		writeLatexChildren(w, n, src)
	}
}

// writeVerbatim emits a code block's lines unescaped inside a verbatim
// environment.
func writeVerbatim(w *strings.Builder, n ast.Node, src []byte) {
	w.WriteString("\\begin{verbatim}\n")
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		w.Write(seg.Value(src))
	}
	w.WriteString("\\end{verbatim}\n\n")
}

// headingCommand maps a Markdown heading level to an unnumbered LaTeX
// sectioning command. Levels beyond 3 flatten to subsubsection.
func headingCommand(level int) string {
	switch level {
	case 1:
		return "section*"
	case 2:
		return "subsection*"
	default:
		return "subsubsection*"
	}
}

// urlReplacer escapes the characters that break a URL inside an \href or
// \url argument. URLs are not free text, so the full escape table does
// not apply.
var urlReplacer = strings.NewReplacer("%", `\%`, "#", `\#`, "&", `\&`)

func escapeURL(u string) string {
	return urlReplacer.Replace(u)
}
