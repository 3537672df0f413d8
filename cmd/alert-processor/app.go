// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tf1999tf/pdf-alert-processor/internal/extract"
	"github.com/tf1999tf/pdf-alert-processor/internal/journal"
	"github.com/tf1999tf/pdf-alert-processor/internal/logger"
	"github.com/tf1999tf/pdf-alert-processor/internal/processor"
	"github.com/tf1999tf/pdf-alert-processor/pkg/types"
)

// app holds the components shared by the process and monitor commands.
type app struct {
	cfg     types.Config
	zl      *zap.Logger
	log     logger.Func
	journal *journal.Store
	proc    *processor.Processor
}

// newApp loads configuration and wires the logger, extractor, journal and
// processor. Callers must Close the returned app.
func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, zl: zl, log: logger.Sink(zl)}

	ex, err := extract.New(cfg.Extractor)
	if err != nil {
		a.Close()
		return nil, err
	}

	opts := processor.Options{
		InputDir:  cfg.InputDir,
		OutputDir: cfg.OutputDir,
		Extractor: ex,
		Log:       a.log,
	}
	if cfg.Journal.Enabled {
		store, err := journal.Open(cfg.Journal.Path)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.journal = store
		opts.Recorder = store
	}

	proc, err := processor.New(opts)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("initializing processor: %w", err)
	}
	a.proc = proc
	return a, nil
}

// Close releases the journal and flushes the logger.
func (a *app) Close() {
	if a.journal != nil {
		if err := a.journal.Close(); err != nil {
			a.zl.Warn("closing journal", zap.Error(err))
		}
	}
	_ = a.zl.Sync()
}
