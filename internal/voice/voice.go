// Package voice provides speech synthesis through interchangeable
// backends. Unlike the sound modality there is no universal fallback:
// a host with no synthesizer simply gets no spoken output, which is a
// valid terminal state.
package voice

import (
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// Options carries per-utterance synthesis parameters.
type Options struct {
	// Voice is the synthesizer voice identity (e.g. "Kyoko").
	Voice string
	// Language tag, e.g. "ja_JP".
	Language string
	// Rate in words per minute.
	Rate int
	// Async detaches the synthesizer process instead of waiting.
	Async bool
}

// Backend is one concrete speech synthesis mechanism. Speak reports
// success; failures never escalate past this boundary.
type Backend interface {
	Name() string
	Available() bool
	Speak(text string, opts Options) bool
}

// Registry holds the ordered list of usable voice backends. An empty
// registry means voice output is silently unavailable this run.
type Registry struct {
	backends []Backend
	logger   *slog.Logger
}

// NewRegistry probes candidates in preference order and retains the
// available ones.
func NewRegistry(logger *slog.Logger, candidates ...Backend) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	r := &Registry{logger: logger}
	for _, b := range candidates {
		if !b.Available() {
			logger.Debug("voice backend unavailable", "backend", b.Name())
			continue
		}
		logger.Debug("voice backend available", "backend", b.Name())
		r.backends = append(r.backends, b)
	}
	return r
}

// Backends returns the available backends in preference order.
func (r *Registry) Backends() []Backend {
	return r.backends
}

// Speak attempts each backend in order until one reports success.
// With no backends it is a logged no-op returning false.
func (r *Registry) Speak(text string, opts Options) bool {
	if len(r.backends) == 0 {
		r.logger.Debug("no voice backends available", "text", text)
		return false
	}

	for _, b := range r.backends {
		if b.Speak(text, opts) {
			r.logger.Debug("spoke text", "backend", b.Name())
			return true
		}
		r.logger.Warn("voice backend failed", "backend", b.Name())
	}
	return false
}

// DefaultCandidates returns the built-in voice backends in preference
// order.
func DefaultCandidates() []Backend {
	return []Backend{
		sayBackend(),
		espeakBackend("espeak"),
		espeakBackend("espeak-ng"),
	}
}

// execSpeaker synthesizes speech by spawning an external program.
type execSpeaker struct {
	name string
	bin  string
	goos string
	args func(text string, opts Options) []string
}

func (s *execSpeaker) Name() string { return s.name }

func (s *execSpeaker) Available() bool {
	if s.goos != "" && runtime.GOOS != s.goos {
		return false
	}
	_, err := exec.LookPath(s.bin)
	return err == nil
}

func (s *execSpeaker) Speak(text string, opts Options) bool {
	cmd := exec.Command(s.bin, s.args(text, opts)...)
	if !opts.Async {
		return cmd.Run() == nil
	}
	return detach(cmd)
}

// sayBackend wraps the macOS say command.
func sayBackend() Backend {
	return &execSpeaker{
		name: "say",
		bin:  "say",
		goos: "darwin",
		args: func(text string, opts Options) []string {
			args := []string{"-v", opts.Voice}
			if opts.Rate > 0 && opts.Rate != 200 {
				args = append(args, "-r", strconv.Itoa(opts.Rate))
			}
			return append(args, text)
		},
	}
}

// espeakBackend wraps espeak or espeak-ng. Japanese support is thin
// but requested anyway when the configured language asks for it.
func espeakBackend(bin string) Backend {
	return &execSpeaker{
		name: bin,
		bin:  bin,
		args: func(text string, opts Options) []string {
			args := []string{"-s", strconv.Itoa(opts.Rate)}
			if strings.HasPrefix(opts.Language, "ja") {
				args = append(args, "-v", "ja")
			}
			return append(args, text)
		},
	}
}

// detach starts cmd disowned with discarded stdio.
func detach(cmd *exec.Cmd) bool {
	devNull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return false
	}
	defer devNull.Close()

	setDetachAttrs(cmd)
	cmd.Stdin = devNull
	cmd.Stdout = devNull
	cmd.Stderr = devNull

	if err := cmd.Start(); err != nil {
		return false
	}
	go func() { _ = cmd.Wait() }()
	return true
}
