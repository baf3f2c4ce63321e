// Package metrics is the pipeline's instrumentation seam. Core code calls
// the package-level helpers; a process wires a concrete backend at startup
// (or none, in which case every call is a no-op). Keeping the surface here
// tiny means no vendor-specific code leaks into the transformation logic.
package metrics

import "sync"

// Backend receives metric observations. Implementations must be safe for
// concurrent use.
type Backend interface {
	// IncCounter adds delta to a monotonic counter.
	IncCounter(name string, delta float64, tags []string)

	// ObserveHistogram records one sample of a distribution.
	ObserveHistogram(name string, value float64, tags []string)

	// Close flushes buffered observations and stops background work.
	Close() error
}

var (
	mu      sync.RWMutex
	backend Backend
)

// SetBackend installs the process-wide backend. Pass nil to disable
// instrumentation. Call once at startup, before the pipeline runs.
func SetBackend(b Backend) {
	mu.Lock()
	backend = b
	mu.Unlock()
}

// Count adds delta to a counter on the installed backend.
func Count(name string, delta float64, tags ...string) {
	mu.RLock()
	b := backend
	mu.RUnlock()
	if b != nil {
		b.IncCounter(name, delta, tags)
	}
}

// Observe records one histogram sample on the installed backend.
func Observe(name string, value float64, tags ...string) {
	mu.RLock()
	b := backend
	mu.RUnlock()
	if b != nil {
		b.ObserveHistogram(name, value, tags)
	}
}

// Close shuts down the installed backend, if any, and uninstalls it.
func Close() error {
	mu.Lock()
	b := backend
	backend = nil
	mu.Unlock()
	if b == nil {
		return nil
	}
	return b.Close()
}
