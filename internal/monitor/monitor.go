// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package monitor polls the input folder for new bulletin PDFs and hands
// them to the processor until it is told to stop.
//
// A Monitor moves Idle -> Running -> StopRequested -> Stopped and runs once.
// Stop only requests the transition; the poll loop observes the request
// between files and while waiting for the next scan.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tf1999tf/pdf-alert-processor/internal/logger"
	"github.com/tf1999tf/pdf-alert-processor/internal/processor"
	"github.com/tf1999tf/pdf-alert-processor/pkg/types"
)

// ErrAlreadyStarted is returned by Run on a Monitor that has already run.
var ErrAlreadyStarted = errors.New("monitor already started")

// Processor is the part of *processor.Processor the monitor drives.
type Processor interface {
	InputDir() string
	ProcessAll(ctx context.Context) (processor.BatchResult, error)
	Pending() ([]string, error)
	TryProcess(path string) (types.Outcome, bool)
}

// Options configures a Monitor.
type Options struct {
	Config types.MonitorConfig

	// Log receives monitor events; nil discards them.
	Log logger.Func

	// Status receives advisory progress strings; optional.
	Status func(string)
}

// Monitor watches one input folder. Only one Monitor may drive a given
// Processor at a time.
type Monitor struct {
	proc   Processor
	cfg    types.MonitorConfig
	log    logger.Func
	status func(string)

	mu       sync.Mutex
	state    types.MonitorState
	stop     chan struct{}
	stopOnce sync.Once
	nudge    chan struct{}
}

// New creates an idle Monitor for proc.
func New(proc Processor, opts Options) *Monitor {
	log := opts.Log
	if log == nil {
		log = logger.Nop
	}
	status := opts.Status
	if status == nil {
		status = func(string) {}
	}
	return &Monitor{
		proc:   proc,
		cfg:    opts.Config,
		log:    log,
		status: status,
		stop:   make(chan struct{}),
		nudge:  make(chan struct{}, 1),
	}
}

// State returns the current lifecycle state.
func (m *Monitor) State() types.MonitorState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Stop requests the poll loop to exit and returns immediately. It is safe
// to call from any goroutine and more than once.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if m.state == types.MonitorRunning {
		m.state = types.MonitorStopRequested
	}
	m.mu.Unlock()
	m.stopOnce.Do(func() { close(m.stop) })
}

// Run converts the PDFs already present, then polls for new ones until Stop
// is called or ctx is cancelled. A failure inside the poll loop is logged,
// ends the loop and is returned; the Monitor is then Stopped and cannot be
// restarted.
func (m *Monitor) Run(ctx context.Context) error {
	m.mu.Lock()
	if m.state != types.MonitorIdle {
		m.mu.Unlock()
		return ErrAlreadyStarted
	}
	m.state = types.MonitorRunning
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.state = types.MonitorStopped
		m.mu.Unlock()
		m.log("monitoring stopped", logger.Info)
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-m.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	dir := m.proc.InputDir()
	m.log(fmt.Sprintf("monitoring folder: %s", dir), logger.Info)
	m.status("monitoring started")

	if m.cfg.Notify {
		closeWatch, err := m.watch(ctx, dir)
		if err != nil {
			m.log(fmt.Sprintf("file notifications unavailable, polling only: %v", err), logger.Warning)
		} else {
			defer closeWatch()
		}
	}

	if err := guard(func() error {
		_, err := m.proc.ProcessAll(ctx)
		return err
	}); err != nil {
		m.log(fmt.Sprintf("monitor failed: %v", err), logger.Error)
		return err
	}

	for ctx.Err() == nil {
		if err := guard(func() error { return m.poll(ctx) }); err != nil {
			m.log(fmt.Sprintf("monitor failed: %v", err), logger.Error)
			return err
		}
		m.wait(ctx)
	}
	return nil
}

func (m *Monitor) poll(ctx context.Context) error {
	pending, err := m.proc.Pending()
	if err != nil {
		return err
	}
	for _, path := range pending {
		if ctx.Err() != nil {
			return nil
		}
		m.log(fmt.Sprintf("new file discovered: %s", filepath.Base(path)), logger.Info)
		m.proc.TryProcess(path)
	}
	return nil
}

// wait blocks for one polling interval. A stop request ends it at once; a
// file notification ends it after one poll step so the new file can settle.
func (m *Monitor) wait(ctx context.Context) {
	timer := time.NewTimer(m.cfg.Interval())
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	case <-m.nudge:
		settle := time.NewTimer(m.step())
		defer settle.Stop()
		select {
		case <-ctx.Done():
		case <-settle.C:
		}
	}
}

func (m *Monitor) step() time.Duration {
	if m.cfg.PollStep > 0 {
		return m.cfg.PollStep
	}
	return types.DefaultPollStep
}

func (m *Monitor) poke() {
	select {
	case m.nudge <- struct{}{}:
	default:
	}
}

// watch forwards PDF create, write and rename events in dir as nudges.
func (m *Monitor) watch(ctx context.Context, dir string) (func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-w.Events:
				if !ok {
					return
				}
				if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 &&
					strings.EqualFold(filepath.Ext(e.Name), ".pdf") {
					m.poke()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				m.log(fmt.Sprintf("file notification error: %v", err), logger.Warning)
			}
		}
	}()

	return func() {
		w.Close()
		<-done
	}, nil
}

// guard runs fn and converts a panic into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
