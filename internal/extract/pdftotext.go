// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

const defaultPdftotext = "pdftotext"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Output(name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) Output(name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil && stderr.Len() > 0 {
		return out, fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return out, err
}

// Pdftotext extracts text by running poppler's pdftotext binary. Pages in
// its output are separated by form feeds.
type Pdftotext struct {
	bin  string
	exec executor
}

// NewPdftotext creates an extractor for the given binary (default
// "pdftotext"). It verifies the binary is on PATH before returning.
func NewPdftotext(bin string) (*Pdftotext, error) {
	return newPdftotext(bin, osExecutor{})
}

func newPdftotext(bin string, ex executor) (*Pdftotext, error) {
	if bin == "" {
		bin = defaultPdftotext
	}
	if _, err := ex.LookPath(bin); err != nil {
		return nil, fmt.Errorf("pdftotext backend unavailable: %w", err)
	}
	return &Pdftotext{bin: bin, exec: ex}, nil
}

// Extract runs pdftotext on path and returns the text of every page that
// produced any characters. Whitespace-only pages are kept, as in Native.
func (p *Pdftotext) Extract(path string) (string, error) {
	out, err := p.exec.Output(p.bin, "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", &ExtractionError{Path: path, Err: err}
	}

	raw := strings.Split(string(out), "\f")
	pages := make([]string, 0, len(raw))
	for _, page := range raw {
		pages = append(pages, strings.TrimRight(page, "\n"))
	}
	return joinPages(pages), nil
}
