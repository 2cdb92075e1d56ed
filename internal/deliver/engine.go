// Package deliver turns a resolved directive into best-effort audible
// output. The engine owns the probed backend registries and the sound
// path cache; nothing that happens inside Deliver can surface as an
// error to the caller.
package deliver

import (
	"log/slog"
	"time"

	"github.com/koehook/koe/internal/audio"
	"github.com/koehook/koe/internal/config"
	"github.com/koehook/koe/internal/locale"
	"github.com/koehook/koe/internal/rules"
	"github.com/koehook/koe/internal/voice"
)

// BothGap is the pause between the voice and sound halves in "both"
// mode, bridging perceptual overlap of the two outputs.
const BothGap = 100 * time.Millisecond

// SoundPlayer attempts playback through an ordered backend list.
type SoundPlayer interface {
	Play(path string, opts audio.PlayOptions) bool
}

// Speaker attempts speech through an ordered backend list.
type Speaker interface {
	Speak(text string, opts voice.Options) bool
}

// PathResolver locates the file for a sound identifier.
type PathResolver interface {
	Resolve(id string) (string, bool)
}

// Beeper is the universal last-resort sound output.
type Beeper interface {
	Ring() bool
}

// Engine delivers directives according to the configured mode.
type Engine struct {
	cfg      *config.Config
	sounds   SoundPlayer
	voices   Speaker
	resolver PathResolver
	bell     Beeper
	logger   *slog.Logger

	// sleep is swapped out by tests.
	sleep func(time.Duration)
}

// New wires an engine. All probing and cache construction happens in
// the injected collaborators; the engine itself holds no mutable state
// after construction.
func New(cfg *config.Config, sounds SoundPlayer, voices Speaker, resolver PathResolver, bell Beeper, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		cfg:      cfg,
		sounds:   sounds,
		voices:   voices,
		resolver: resolver,
		bell:     bell,
		logger:   logger,
		sleep:    time.Sleep,
	}
}

// NewDefault constructs an engine with freshly probed default backends.
func NewDefault(cfg *config.Config, logger *slog.Logger) *Engine {
	return New(cfg,
		audio.NewRegistry(logger, audio.DefaultCandidates()...),
		voice.NewRegistry(logger, voice.DefaultCandidates()...),
		audio.NewResolver(cfg.Sound.Dir, cfg.Sound.Type),
		audio.Bell{},
		logger,
	)
}

// Deliver performs the feedback a directive asks for, honoring the
// configured mode. It never fails visibly: every problem downstream is
// logged and absorbed.
func (e *Engine) Deliver(d rules.Directive) {
	if d.IsZero() {
		e.logger.Debug("no directive, nothing to deliver")
		return
	}

	switch e.cfg.Mode {
	case config.ModeSound:
		e.playSound(d.Sound)
	case config.ModeVoice:
		e.speak(d.VoiceKey)
	case config.ModeBoth:
		// Voice first, then a short gap, then sound. Each half is
		// independently optional; the gap precedes any sound output.
		e.speak(d.VoiceKey)
		if d.Sound != "" && !e.cfg.Test {
			e.sleep(BothGap)
		}
		e.playSound(d.Sound)
	}
}

// playSound resolves and plays one sound id, beeping as a last resort
// when fallback is enabled. Returns whether anything audible happened.
func (e *Engine) playSound(id string) bool {
	if id == "" {
		return false
	}

	path, found := e.resolver.Resolve(id)

	if e.cfg.Test {
		e.logger.Info("test mode: would play sound",
			"sound", id, "path", path, "resolved", found)
		return false
	}

	if !found {
		e.logger.Warn("sound not found", "sound", id)
		if e.cfg.Sound.Fallback {
			return e.bell.Ring()
		}
		return false
	}

	opts := audio.PlayOptions{
		Volume:   e.cfg.Sound.Volume,
		Blocking: e.cfg.Sound.Blocking,
	}
	if e.sounds.Play(path, opts) {
		return true
	}

	e.logger.Warn("all sound backends failed", "sound", id)
	if e.cfg.Sound.Fallback {
		return e.bell.Ring()
	}
	return false
}

// speak translates and speaks one voice key. With no voice backends
// this is a quiet no-op. Returns whether speech was attempted
// successfully.
func (e *Engine) speak(key string) bool {
	if key == "" {
		return false
	}

	text := locale.Translate(key)

	if e.cfg.Test {
		e.logger.Info("test mode: would speak", "key", key, "text", text)
		return false
	}

	opts := voice.Options{
		Voice:    e.cfg.Voice.Name,
		Language: e.cfg.Voice.Language,
		Rate:     e.cfg.Voice.Rate,
		Async:    e.cfg.Voice.Async,
	}
	if e.voices.Speak(text, opts) {
		return true
	}

	e.logger.Debug("voice output unavailable", "key", key)
	return false
}
