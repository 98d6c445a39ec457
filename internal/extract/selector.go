package extract

import (
	"log/slog"

	"github.com/pdftab/pdftab/internal/pageset"
	"github.com/pdftab/pdftab/internal/table"
)

// Selector resolves the "auto" method by probing backends against the first
// page of the document.
type Selector struct {
	registry *Registry
}

// NewSelector creates a selector over the given registry.
func NewSelector(registry *Registry) *Selector {
	return &Selector{registry: registry}
}

// Select resolves the method to run. An explicit request is honored when the
// backend is available and rejected with BackendUnavailableError otherwise.
// For auto, backends are probed in fixed order against page 1; the first one
// returning a non-empty table wins. Probe errors are logged and swallowed.
// When nothing produces tables, the text fallback is chosen.
func (s *Selector) Select(path string, requested Method, opts Options) (Method, error) {
	if requested != "" && requested != MethodAuto {
		if !s.registry.Available(requested) {
			return "", &BackendUnavailableError{Method: requested}
		}
		return requested, nil
	}

	probe := pageset.First(1)
	for _, m := range probeOrder {
		backend, ok := s.registry.Get(m)
		if !ok || !backend.Available() {
			continue
		}

		found, err := backend.Extract(path, probe, opts)
		if err != nil {
			slog.Debug("probe failed", "method", m, "file", path, "error", err)
			continue
		}
		for _, t := range found {
			if !table.Normalize(t).IsEmpty() {
				slog.Debug("probe succeeded", "method", m, "file", path)
				return m, nil
			}
		}
	}
	return MethodText, nil
}
