package cv2pdf

import "errors"

// Sentinel errors for library operations.
var (
	// Renderer errors.
	ErrTemplateFamilyNotFound = errors.New("template family not found")
	ErrTemplateDirNotFound    = errors.New("template directory not found")
	ErrDocumentTypeNotFound   = errors.New("document type not found")
	ErrRender                 = errors.New("template rendering failed")

	// Compiler errors.
	ErrUnknownEngine     = errors.New("unknown compilation engine")
	ErrNoEngine          = errors.New("no PDF compilation engine available")
	ErrEngineUnavailable = errors.New("compilation engine not available")
	ErrCompilation       = errors.New("PDF compilation failed")
	ErrCompileTimeout    = errors.New("PDF compilation timed out")

	// Sample data errors.
	ErrUnknownSample = errors.New("unknown sample document type")
)
