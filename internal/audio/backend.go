// Package audio provides sound playback through interchangeable
// backends. Backends are probed for availability once at startup; the
// registry keeps the usable ones in preference order and guarantees a
// universal bell fallback when nothing else exists on the host.
package audio

import (
	"log/slog"
)

// PlayOptions carries per-invocation playback parameters.
type PlayOptions struct {
	// Volume is linear, 0.0 to 1.0.
	Volume float64
	// Blocking waits for the player to finish instead of detaching.
	Blocking bool
}

// Backend is one concrete mechanism for playing a sound file.
// Available is probed once per process; Play reports success and must
// never panic or return an error past this boundary.
type Backend interface {
	Name() string
	Available() bool
	Play(path string, opts PlayOptions) bool
}

// Registry holds the ordered list of usable sound backends. It is
// write-once at construction and read-only afterwards.
type Registry struct {
	backends []Backend
	logger   *slog.Logger
}

// NewRegistry probes candidates in preference order and retains the
// available ones. The sound modality must never end up empty: when no
// candidate is usable the universal bell is appended.
func NewRegistry(logger *slog.Logger, candidates ...Backend) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	r := &Registry{logger: logger}
	for _, b := range candidates {
		if !b.Available() {
			logger.Debug("sound backend unavailable", "backend", b.Name())
			continue
		}
		logger.Debug("sound backend available", "backend", b.Name())
		r.backends = append(r.backends, b)
	}

	if len(r.backends) == 0 {
		logger.Warn("no sound backends available, falling back to bell")
		r.backends = append(r.backends, Bell{})
	}

	return r
}

// Backends returns the available backends in preference order.
func (r *Registry) Backends() []Backend {
	return r.backends
}

// Play attempts each backend in order until one reports success. A
// failing backend is logged and skipped, never escalated.
func (r *Registry) Play(path string, opts PlayOptions) bool {
	for _, b := range r.backends {
		if b.Play(path, opts) {
			r.logger.Debug("played sound", "backend", b.Name(), "path", path)
			return true
		}
		r.logger.Warn("sound backend failed", "backend", b.Name(), "path", path)
	}
	return false
}

// DefaultCandidates returns the built-in sound backends in preference
// order: native CLI players first, then the in-process decoder.
func DefaultCandidates() []Backend {
	return []Backend{
		afplayBackend(),
		soxBackend(),
		paplayBackend(),
		aplayBackend(),
		&speakerBackend{},
	}
}
