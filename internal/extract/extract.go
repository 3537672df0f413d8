// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls the raw page text out of PDF bulletins. Pages are
// concatenated in document order, each followed by a line feed; pages that
// yield no text contribute nothing.
package extract

import (
	"fmt"

	"github.com/tf1999tf/pdf-alert-processor/pkg/types"
)

// Extractor transforms a PDF file into its raw text. Different backends
// (native Go parser, poppler's pdftotext) implement this interface.
type Extractor interface {
	// Extract reads the PDF at path and returns the concatenated page text.
	// Failures are reported as *ExtractionError.
	Extract(path string) (string, error)
}

// ExtractionError reports a document that could not be opened or parsed.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting text from %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// New returns the extractor selected by cfg.Backend. An empty backend
// selects the native extractor.
func New(cfg types.ExtractorConfig) (Extractor, error) {
	switch cfg.Backend {
	case "", types.BackendNative:
		return NewNative(), nil
	case types.BackendPdftotext:
		p, err := NewPdftotext(cfg.Pdftotext)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown extractor backend %q (want %s or %s)",
			cfg.Backend, types.BackendNative, types.BackendPdftotext)
	}
}

// joinPages appends every non-empty page followed by a line feed.
func joinPages(pages []string) string {
	var n int
	for _, p := range pages {
		n += len(p) + 1
	}
	buf := make([]byte, 0, n)
	for _, p := range pages {
		if p == "" {
			continue
		}
		buf = append(buf, p...)
		buf = append(buf, '\n')
	}
	return string(buf)
}
