// Package cv2pdf renders structured CV/resume data into LaTeX documents
// and compiles them to PDF with xelatex or a texlive container.
//
// # Quick Start
//
// Load sample data and generate a PDF in one call:
//
//	data, err := cv2pdf.LoadSample("resume")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pdf, err := cv2pdf.GeneratePDF(ctx, data, "resume", "resume.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("created", pdf)
//
// # Pipeline
//
// Generation follows these stages:
//
//  1. Template rendering (text/template with << >> delimiters and the
//     latexEscape/markdown filters)
//  2. Copying the family's class files next to the rendered document
//  3. PDF compilation (local xelatex, or the texlive/texlive container,
//     auto-detected in that order)
//  4. Relocation of the PDF and cleanup of toolchain byproducts
//
// Without GenerateOptions.KeepTex the intermediates live in a temporary
// directory that is removed only after the PDF exists; failed runs keep
// it for debugging.
//
// # Rendering and compiling separately
//
//	renderer, err := cv2pdf.NewRenderer(cv2pdf.WithFamily("awesome-cv"))
//	tex, err := renderer.Render("coverletter", data, "letter.tex")
//
//	compiler := cv2pdf.NewCompiler(
//	    cv2pdf.WithEngine(cv2pdf.EngineDocker),
//	    cv2pdf.WithCompileTimeout(2*time.Minute),
//	)
//	pdf, err := compiler.Compile(ctx, "letter.tex", cv2pdf.CompileOptions{})
//
// Compilation succeeds if and only if the PDF exists afterwards; the
// toolchain's exit status is ignored because LaTeX exits nonzero on mere
// warnings.
//
// # Custom templates
//
// A custom directory overrides the bundled template set entirely. It must
// contain {resume,cv,coverletter}.tex.tmpl files (any subset) plus the
// class files the templates require:
//
//	renderer, err := cv2pdf.NewRenderer(cv2pdf.WithTemplateDir("my-templates"))
//
// # Toolchain Requirements
//
// PDF compilation requires either a local xelatex binary (texlive-xetex)
// or Docker, which pulls texlive/texlive:latest on first use. Rendering
// to .tex needs no external tools.
package cv2pdf
