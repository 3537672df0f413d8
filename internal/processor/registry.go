// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package processor

import (
	"sort"
	"sync"
)

// Registry is the set of source basenames converted during this run. It
// also tracks files currently being processed so that a monitor pass and a
// manual batch never convert the same file at the same time.
type Registry struct {
	mu       sync.Mutex
	done     map[string]struct{}
	inflight map[string]struct{}
}

func newRegistry() *Registry {
	return &Registry{
		done:     make(map[string]struct{}),
		inflight: make(map[string]struct{}),
	}
}

// Contains reports whether name was converted during this run.
func (r *Registry) Contains(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.done[name]
	return ok
}

// Len returns the number of converted files.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.done)
}

// Names returns the converted basenames in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.done))
	for n := range r.done {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) add(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.done[name] = struct{}{}
}

// claim marks name as in flight. It fails when name is already converted
// or another caller holds it.
func (r *Registry) claim(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.done[name]; ok {
		return false
	}
	if _, ok := r.inflight[name]; ok {
		return false
	}
	r.inflight[name] = struct{}{}
	return true
}

func (r *Registry) release(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inflight, name)
}
