// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package processor converts bulletin PDFs into ZUGY text artifacts. It runs
// extraction, parsing and naming for each file, writes the result to the
// output folder, and remembers which sources were converted during the run.
package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tf1999tf/pdf-alert-processor/internal/bulletin"
	"github.com/tf1999tf/pdf-alert-processor/internal/extract"
	"github.com/tf1999tf/pdf-alert-processor/internal/logger"
	"github.com/tf1999tf/pdf-alert-processor/internal/naming"
	"github.com/tf1999tf/pdf-alert-processor/pkg/types"
)

// Recorder receives the outcome of every processed file.
type Recorder interface {
	Record(ctx context.Context, o types.Outcome) error
}

// Options configures a Processor. Extractor is required.
type Options struct {
	InputDir  string
	OutputDir string
	Extractor extract.Extractor

	// Log receives progress and failure messages; nil discards them.
	Log logger.Func

	// Recorder is optional.
	Recorder Recorder
}

// Processor converts the PDFs of one input folder. Its registry lives as
// long as the Processor; create one Processor per run.
type Processor struct {
	inputDir  string
	outputDir string
	extractor extract.Extractor
	log       logger.Func
	recorder  Recorder
	registry  *Registry

	// recorded holds the last reason journaled per source during this run.
	recordedMu sync.Mutex
	recorded   map[string]types.Reason
}

// BatchResult holds the outcome of one ProcessAll run.
type BatchResult struct {
	Found       int
	Converted   int
	Skipped     int
	Failed      int
	Interrupted bool
}

// AnySucceeded reports whether at least one file was converted.
func (r BatchResult) AnySucceeded() bool {
	return r.Converted > 0
}

// HasFailures reports whether any file failed extraction or writing.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// New creates a Processor, creating the input and output folders when they
// do not exist.
func New(opts Options) (*Processor, error) {
	if opts.Extractor == nil {
		return nil, fmt.Errorf("processor requires an extractor")
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop
	}

	p := &Processor{
		inputDir:  opts.InputDir,
		outputDir: opts.OutputDir,
		extractor: opts.Extractor,
		log:       log,
		recorder:  opts.Recorder,
		registry:  newRegistry(),
		recorded:  make(map[string]types.Reason),
	}

	for _, d := range []struct{ label, path string }{
		{"PDF", p.inputDir},
		{"TXT", p.outputDir},
	} {
		created, err := ensureDir(d.path)
		if err != nil {
			return nil, fmt.Errorf("creating %s folder %s: %w", d.label, d.path, err)
		}
		if created {
			log(fmt.Sprintf("created %s folder: %s", d.label, d.path), logger.Info)
		}
	}
	return p, nil
}

func ensureDir(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return false, err
	}
	return true, nil
}

// InputDir returns the folder scanned for PDFs.
func (p *Processor) InputDir() string { return p.inputDir }

// Registry returns the set of files converted during this run.
func (p *Processor) Registry() *Registry { return p.registry }

// ProcessOne converts the PDF at path and reports whether an artifact was
// written.
func (p *Processor) ProcessOne(path string) bool {
	return p.ProcessFile(path).OK()
}

// ProcessFile extracts, parses and writes one PDF. A document without a
// locatable body is skipped with a warning; extraction and write failures
// are logged as errors. Only converted files enter the registry. An
// existing artifact with the same name is overwritten.
//
// Every conversion is recorded. A skip or failure is recorded only when its
// reason differs from the last one recorded for the same source, so a file
// retried on each monitor pass adds one journal entry, not one per pass.
func (p *Processor) ProcessFile(path string) types.Outcome {
	out := p.processFile(path)
	p.record(out)
	return out
}

func (p *Processor) record(out types.Outcome) {
	if p.recorder == nil {
		return
	}

	p.recordedMu.Lock()
	defer p.recordedMu.Unlock()
	if last, ok := p.recorded[out.Source]; ok && !out.OK() && last == out.Reason {
		return
	}
	if err := p.recorder.Record(context.Background(), out); err != nil {
		p.log(fmt.Sprintf("journal: %v", err), logger.Warning)
		return
	}
	p.recorded[out.Source] = out.Reason
}

func (p *Processor) processFile(path string) types.Outcome {
	name := filepath.Base(path)

	text, err := p.extractor.Extract(path)
	if err != nil {
		p.log(fmt.Sprintf("failed to extract %s: %v", name, err), logger.Error)
		return types.Outcome{Source: name, Reason: types.ReasonExtractionFailed, Err: err}
	}

	rec := bulletin.Parse(text)
	if rec.Body == "" {
		p.log(fmt.Sprintf("no bulletin content found in %s, skipped", name), logger.Warning)
		return types.Outcome{Source: name, Record: &rec, Reason: types.ReasonEmptyBody}
	}

	outName := naming.OutputName(name, rec.WarningNumber)
	outPath := filepath.Join(p.outputDir, outName)
	if err := os.WriteFile(outPath, []byte(rec.Text()), 0o644); err != nil {
		p.log(fmt.Sprintf("failed to write %s for %s: %v", outName, name, err), logger.Error)
		return types.Outcome{Source: name, Record: &rec, Reason: types.ReasonWriteFailed, Err: err}
	}

	p.registry.add(name)
	p.log(fmt.Sprintf("%s -> %s", name, outName), logger.Info)
	return types.Outcome{Source: name, Output: outName, Record: &rec}
}

// TryProcess processes path unless its basename was already converted or
// is being processed by another caller. The boolean reports whether the
// file was attempted.
func (p *Processor) TryProcess(path string) (types.Outcome, bool) {
	name := filepath.Base(path)
	if !p.registry.claim(name) {
		return types.Outcome{Source: name}, false
	}
	defer p.registry.release(name)
	return p.ProcessFile(path), true
}

// ListPDFs returns the *.pdf files directly inside the input folder, in
// directory order. Hidden files and subdirectories are ignored.
func (p *Processor) ListPDFs() ([]string, error) {
	entries, err := os.ReadDir(p.inputDir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", p.inputDir, err)
	}
	var paths []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.EqualFold(filepath.Ext(name), ".pdf") {
			continue
		}
		paths = append(paths, filepath.Join(p.inputDir, name))
	}
	return paths, nil
}

// Pending returns the listed PDFs whose basenames are not yet registered.
func (p *Processor) Pending() ([]string, error) {
	paths, err := p.ListPDFs()
	if err != nil {
		return nil, err
	}
	pending := paths[:0]
	for _, path := range paths {
		if !p.registry.Contains(filepath.Base(path)) {
			pending = append(pending, path)
		}
	}
	return pending, nil
}

// ProcessAll converts every unregistered PDF in the input folder. The
// context is the stop signal: it is checked before each file and a
// cancelled run ends early with Interrupted set. Running it again over an
// unchanged folder converts nothing.
func (p *Processor) ProcessAll(ctx context.Context) (BatchResult, error) {
	var result BatchResult

	p.log("looking for PDF files...", logger.Info)
	paths, err := p.ListPDFs()
	if err != nil {
		p.log(err.Error(), logger.Error)
		return result, err
	}
	result.Found = len(paths)
	if len(paths) == 0 {
		p.log("no PDF files found", logger.Warning)
		return result, nil
	}
	p.log(fmt.Sprintf("found %d PDF files", len(paths)), logger.Info)

	for _, path := range paths {
		if ctx.Err() != nil {
			p.log("processing interrupted by stop request", logger.Info)
			result.Interrupted = true
			break
		}
		out, attempted := p.TryProcess(path)
		if !attempted {
			continue
		}
		switch out.Reason {
		case types.ReasonNone:
			result.Converted++
		case types.ReasonEmptyBody:
			result.Skipped++
		default:
			result.Failed++
		}
	}

	p.log(fmt.Sprintf("processing complete: %d files converted", result.Converted), logger.Info)
	return result, nil
}
