package csp

import "sync/atomic"

// libraryRefs is the package-level reference count backing Init/Finalize,
// mirroring the reference-counted init/finalize scheme the original C
// library exposes for legacy callers (see Design Notes §9). Every other
// exported solver entry point calls requireInitialized, which panics if
// this counter is zero.
var libraryRefs atomic.Int64

// Library is a handle returned by Init. Finalize must be called exactly
// once per handle to release the caller's reference.
type Library struct {
	finalized atomic.Bool
}

// Init increments the package-level reference count and returns a handle.
// The library must be initialized before any other exported API in this
// package is called. Only the solver entry points (SolveBacktrack and
// SolveForwardCheck) check that precondition, via requireInitialized; the
// builder, Context and CancelToken functions do not check it.
func Init() *Library {
	libraryRefs.Add(1)
	return &Library{}
}

// Finalize decrements the package-level reference count. Calling Finalize
// more than once on the same handle panics — a contract violation.
func (l *Library) Finalize() {
	if !l.finalized.CompareAndSwap(false, true) {
		panic("csp: Finalize called more than once on the same Library handle")
	}
	libraryRefs.Add(-1)
}

// requireInitialized panics if the library has not been initialized. It is
// called at the top of every exported solver entry point.
func requireInitialized() {
	if libraryRefs.Load() <= 0 {
		panic("csp: library not initialized; call csp.Init() first")
	}
}
