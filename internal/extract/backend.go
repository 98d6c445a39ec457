package extract

import (
	"github.com/pdftab/pdftab/internal/pageset"
	"github.com/pdftab/pdftab/internal/table"
)

// Options tune a single extraction run. The zero value gives defaults.
type Options struct {
	// MinConfidence is the minimum detection confidence (0..1) for backends
	// that score their tables (grid). Zero means the backend default.
	MinConfidence float64
}

// Backend is a table extraction provider. Implementations must be safe for
// concurrent use; the batch processor calls them from multiple workers.
type Backend interface {
	// Method returns the backend's identifier.
	Method() Method

	// Available reports whether the backend can run. Availability is fixed
	// at registry construction time.
	Available() bool

	// Extract returns the tables found on the selected pages. Returning an
	// empty slice is a normal outcome, not an error.
	Extract(path string, sel pageset.Selection, opts Options) ([]table.Table, error)
}

// AccuracyReporter is implemented by backends that score their detections.
// The coordinator surfaces the mean score on the Result.
type AccuracyReporter interface {
	ExtractWithAccuracy(path string, sel pageset.Selection, opts Options) ([]table.Table, float64, error)
}

// RegistryConfig controls which backends the registry enables.
type RegistryConfig struct {
	// Disabled lists backend names to turn off. The text backend cannot be
	// disabled; it is the fallback of last resort.
	Disabled []string
}

// Registry holds the available backends. Availability is computed once at
// construction and read concurrently afterwards.
type Registry struct {
	backends map[Method]Backend
}

// NewRegistry builds a registry with the standard backends, honoring the
// disabled list from configuration.
func NewRegistry(cfg RegistryConfig) *Registry {
	disabled := make(map[Method]bool, len(cfg.Disabled))
	for _, name := range cfg.Disabled {
		disabled[Method(name)] = true
	}

	r := &Registry{backends: make(map[Method]Backend)}
	r.Register(&latticeBackend{enabled: !disabled[MethodLattice]})
	r.Register(&gridBackend{enabled: !disabled[MethodGrid]})
	r.Register(&pageTextBackend{enabled: !disabled[MethodPageText]})
	r.Register(&textBackend{})
	return r
}

// NewRegistryWith builds a registry containing exactly the given backends.
func NewRegistryWith(backends ...Backend) *Registry {
	r := &Registry{backends: make(map[Method]Backend)}
	for _, b := range backends {
		r.Register(b)
	}
	return r
}

// Register adds or replaces a backend. Primarily used by tests to install
// fakes.
func (r *Registry) Register(b Backend) {
	r.backends[b.Method()] = b
}

// Get returns the backend for the method.
func (r *Registry) Get(m Method) (Backend, bool) {
	b, ok := r.backends[m]
	return b, ok
}

// Available reports whether the method maps to a usable backend.
func (r *Registry) Available(m Method) bool {
	b, ok := r.backends[m]
	return ok && b.Available()
}

// Methods returns the registered methods that are available, in probe order
// followed by the text fallback.
func (r *Registry) Methods() []Method {
	var methods []Method
	for _, m := range append(append([]Method(nil), probeOrder...), MethodText) {
		if r.Available(m) {
			methods = append(methods, m)
		}
	}
	return methods
}
