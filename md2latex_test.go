package cv2pdf

import (
	"strings"
	"testing"
)

func TestMarkdownToLaTeX(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		source    string
		wantParts []string
		wantNot   string
	}{
		{
			name:      "plain paragraph",
			source:    "Just plain text.",
			wantParts: []string{"Just plain text."},
		},
		{
			name:      "special characters escaped",
			source:    "Reduced costs by 40% at C&A",
			wantParts: []string{`40\%`, `C\&A`},
		},
		{
			name:      "emphasis",
			source:    "an *important* word",
			wantParts: []string{`\emph{important}`},
		},
		{
			name:      "strong",
			source:    "a **very important** phrase",
			wantParts: []string{`\textbf{very important}`},
		},
		{
			name:      "code span escapes content",
			source:    "run `make_all` now",
			wantParts: []string{`\texttt{make\_all}`},
		},
		{
			name:      "unordered list",
			source:    "- first\n- second",
			wantParts: []string{`\begin{itemize}`, `\item first`, `\item second`, `\end{itemize}`},
		},
		{
			name:      "ordered list",
			source:    "1. one\n2. two",
			wantParts: []string{`\begin{enumerate}`, `\item one`, `\end{enumerate}`},
		},
		{
			name:      "link",
			source:    "[my site](https://example.com/a%20b)",
			wantParts: []string{`\href{https://example.com/a\%20b}{my site}`},
		},
		{
			name:      "heading is unnumbered",
			source:    "# Experience",
			wantParts: []string{`\section*{Experience}`},
		},
		{
			name:      "deep heading flattens",
			source:    "#### Notes",
			wantParts: []string{`\subsubsection*{Notes}`},
		},
		{
			name:      "blockquote",
			source:    "> wise words",
			wantParts: []string{`\begin{quote}`, "wise words", `\end{quote}`},
		},
		{
			name:      "fenced code stays verbatim",
			source:    "```\nmap_reduce(x)\n```",
			wantParts: []string{`\begin{verbatim}`, "map_reduce(x)", `\end{verbatim}`},
			wantNot:   `map\_reduce`,
		},
		{
			name:      "raw html dropped",
			source:    "before <b>bold</b> after",
			wantParts: []string{"before", "after"},
			wantNot:   "<b>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MarkdownToLaTeX(tt.source)
			for _, want := range tt.wantParts {
				if !strings.Contains(got, want) {
					t.Errorf("MarkdownToLaTeX(%q) = %q, missing %q", tt.source, got, want)
				}
			}
			if tt.wantNot != "" && strings.Contains(got, tt.wantNot) {
				t.Errorf("MarkdownToLaTeX(%q) = %q, should not contain %q", tt.source, got, tt.wantNot)
			}
		})
	}
}

func TestMarkdownToLaTeXNoTrailingNewlines(t *testing.T) {
	t.Parallel()

	got := MarkdownToLaTeX("one paragraph")
	if strings.HasSuffix(got, "\n") {
		t.Errorf("expected trimmed output, got %q", got)
	}
}

func TestMarkdownToLaTeXEmpty(t *testing.T) {
	t.Parallel()

	if got := MarkdownToLaTeX(""); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}
