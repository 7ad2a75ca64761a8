package cv2pdf

import (
	"fmt"
	"strings"
)

// backslashPlaceholder temporarily stands in for backslashes during
// escaping. Backslash must be replaced first: doing it after the other
// substitutions would corrupt the backslashes those substitutions insert.
// The null bytes make an accidental occurrence in input text implausible.
const backslashPlaceholder = "\x00BACKSLASH\x00"

// latexReplacer rewrites the reserved characters that have a simple
// backslash-prefixed escape, plus tilde and caret which need command forms
// to avoid consuming the following character.
var latexReplacer = strings.NewReplacer(
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\^{}`,
)

// LatexEscape escapes LaTeX special characters in v so the result renders
// as literal text. Non-string values are formatted with fmt.Sprint first.
//
// This is a single-pass escape: applying it to already-escaped text
// re-escapes the backslashes inserted by the first pass.
func LatexEscape(v any) string {
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}

	s = strings.ReplaceAll(s, `\`, backslashPlaceholder)
	s = latexReplacer.Replace(s)
	return strings.ReplaceAll(s, backslashPlaceholder, `\textbackslash{}`)
}
