package main

import (
	"errors"
	"os"

	cv2pdf "github.com/alnah/go-cv2pdf"
)

// errorClass returns the short prefix printed before an error message,
// distinguishing the error kind on stderr. The process exits 1 on any
// error; the prefix carries the classification.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func errorClass(err error) string {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return "not found"

	case errors.Is(err, cv2pdf.ErrCompileTimeout):
		return "timeout"

	case errors.Is(err, cv2pdf.ErrNoEngine),
		errors.Is(err, cv2pdf.ErrEngineUnavailable),
		errors.Is(err, cv2pdf.ErrCompilation):
		return "compile error"

	case errors.Is(err, cv2pdf.ErrDocumentTypeNotFound),
		errors.Is(err, cv2pdf.ErrRender):
		return "render error"

	case errors.Is(err, cv2pdf.ErrTemplateFamilyNotFound),
		errors.Is(err, cv2pdf.ErrTemplateDirNotFound),
		errors.Is(err, cv2pdf.ErrUnknownEngine),
		errors.Is(err, ErrNoInput),
		errors.Is(err, ErrNotAFile),
		errors.Is(err, ErrDataParse),
		errors.Is(err, ErrDataNotMap),
		errors.Is(err, ErrTexOnlyWithTex):
		return "config error"

	default:
		return "error"
	}
}
