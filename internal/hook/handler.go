// Package hook orchestrates one event through the pipeline: parse,
// audit, match, deliver. Its exit-code contract protects the host
// tool: only unparseable input may return non-zero, every other
// failure is logged and absorbed.
package hook

import (
	"encoding/json"
	"log/slog"

	"github.com/koehook/koe/internal/config"
	"github.com/koehook/koe/internal/event"
	"github.com/koehook/koe/internal/locale"
	"github.com/koehook/koe/internal/rules"
)

// Exit codes. Anything that happens after a successful parse maps to
// ExitOK so the invoking assistant is never blocked by this tool.
const (
	ExitOK       = 0
	ExitBadInput = 1
)

// Deliverer turns a directive into output.
type Deliverer interface {
	Deliver(d rules.Directive)
}

// Auditor records raw events, best-effort.
type Auditor interface {
	Append(raw json.RawMessage)
}

// Notifier posts optional desktop notifications.
type Notifier interface {
	Available() bool
	Send(summary, body string) bool
}

// Handler wires one invocation's collaborators together.
type Handler struct {
	cfg      *config.Config
	matcher  *rules.Matcher
	engine   Deliverer
	audit    Auditor
	notifier Notifier
	logger   *slog.Logger
}

// New creates a handler. audit and notifier may be nil.
func New(cfg *config.Config, matcher *rules.Matcher, engine Deliverer, audit Auditor, notifier Notifier, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		cfg:      cfg,
		matcher:  matcher,
		engine:   engine,
		audit:    audit,
		notifier: notifier,
		logger:   logger,
	}
}

// Handle processes one raw event and returns the process exit code.
func (h *Handler) Handle(raw []byte) int {
	p, err := event.Parse(raw)
	if err != nil {
		h.logger.Error("malformed input", "error", err)
		return ExitBadInput
	}

	// Everything past the parse is fenced: an internal fault is logged
	// and the process still reports success to the host.
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("recovered internal fault", "panic", r)
		}
	}()

	h.handle(p)
	return ExitOK
}

func (h *Handler) handle(p *event.Payload) {
	if h.audit != nil {
		h.audit.Append(p.Raw())
	}

	d := h.matcher.Find(p)
	if d.IsZero() {
		h.logger.Debug("no rule matched",
			"event", p.EventName(), "tool", p.Tool())
		return
	}

	h.logger.Debug("matched directive",
		"event", p.EventName(), "tool", p.Tool(),
		"sound", d.Sound, "voice_key", d.VoiceKey)

	h.notifyDesktop(p, d)
	h.engine.Deliver(d)
}

// notifyDesktop mirrors attention events to the desktop when enabled.
// Strictly optional: disabled, unavailable, test-mode, and failed
// sends all degrade to nothing.
func (h *Handler) notifyDesktop(p *event.Payload, d rules.Directive) {
	if h.notifier == nil || !h.cfg.Notify.Enabled || h.cfg.Test {
		return
	}
	if !attentionEvent(p.EventName()) {
		return
	}
	if !h.notifier.Available() {
		return
	}

	body := p.Message
	if body == "" {
		body = locale.Translate(d.VoiceKey)
	}
	h.notifier.Send("koe", body)
}

// attentionEvent reports whether a lifecycle event warrants a desktop
// notification as well as audio.
func attentionEvent(name string) bool {
	switch name {
	case "Notification", "Stop", "SubagentStop":
		return true
	}
	return false
}
