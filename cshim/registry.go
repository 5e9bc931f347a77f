// Package cshim exposes the posit core across a C ABI boundary: opaque
// handles over a process-wide registry, following a session-manager
// pattern generalized from HTTP sessions to raw numeric handles with no
// HTTP dependency.
package cshim

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/vilunov/goposit/posit"
)

// ErrHandleNotFound is returned when a lookup is given a handle this
// registry never issued, or one that has already been freed.
var ErrHandleNotFound = errors.New("cshim: handle not found")

// registry is the one shared mutable resource in this codebase: every other
// package is purely functional. Handles are strictly linear — a caller that
// frees a handle and then reuses it gets ErrHandleNotFound, never a stale
// value.
type registry struct {
	mu      sync.RWMutex
	values  map[uintptr]posit.Posit
	nextID  uint64
}

var globalRegistry = &registry{
	values: make(map[uintptr]posit.Posit),
}

// put stores p and returns a fresh handle.
func (r *registry) put(p posit.Posit) uintptr {
	id := atomic.AddUint64(&r.nextID, 1)
	h := uintptr(id)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[h] = p
	return h
}

// get retrieves the Posit stored at h.
func (r *registry) get(h uintptr) (posit.Posit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.values[h]
	if !ok {
		return posit.Posit{}, ErrHandleNotFound
	}
	return p, nil
}

// free removes h from the registry. Freeing an unknown handle is not an
// error — C callers that double-free get a no-op, not a crash.
func (r *registry) free(h uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, h)
}

// Count reports the number of live handles in the process-wide registry.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.values)
}
