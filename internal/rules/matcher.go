package rules

import "github.com/koehook/koe/internal/event"

// Directive is the resolved output intent for one event: a sound
// identifier and a localized-description key. The zero Directive means
// no feedback.
type Directive struct {
	Sound    string
	VoiceKey string
}

// IsZero reports whether the directive carries no feedback at all.
func (d Directive) IsZero() bool {
	return d.Sound == "" && d.VoiceKey == ""
}

// Matcher resolves events against the rule table. It is pure: the
// same payload always yields the same directive.
type Matcher struct {
	system   []Rule
	tools    []Rule
	commands []Rule
}

// NewMatcher builds a matcher over the built-in rule table with all
// patterns compiled.
func NewMatcher() *Matcher {
	m := &Matcher{}
	for _, r := range table() {
		r.compile()
		switch r.Category {
		case CategorySystem:
			m.system = append(m.system, r)
		case CategoryTool:
			m.tools = append(m.tools, r)
		case CategoryCommand:
			m.commands = append(m.commands, r)
		}
	}
	return m
}

// Find resolves a payload to at most one directive.
//
// Lifecycle events take precedence over tool names, which take
// precedence over shell commands. The first two categories are
// first-match-wins in table order; the shell category selects the
// highest-priority match, earlier table position breaking ties. Shell
// commands are only consulted on the shell tool's pre-execution event.
func (m *Matcher) Find(p *event.Payload) Directive {
	eventName := p.EventName()
	toolName := p.Tool()

	for i := range m.system {
		if m.system[i].matches(eventName) {
			return directive(&m.system[i])
		}
	}

	for i := range m.tools {
		if m.tools[i].matches(toolName) {
			return directive(&m.tools[i])
		}
	}

	if toolName == ShellTool && eventName == PreToolEvent {
		return m.findCommand(p.ShellCommand())
	}

	return Directive{}
}

// findCommand resolves a shell command against the command category.
// All matching rules are collected and the numerically highest
// priority wins; a tie keeps the earlier rule (stable selection).
func (m *Matcher) findCommand(command string) Directive {
	var best *Rule
	for i := range m.commands {
		r := &m.commands[i]
		if !r.matches(command) {
			continue
		}
		if best == nil || r.Priority > best.Priority {
			best = r
		}
	}
	if best == nil {
		return Directive{}
	}
	return directive(best)
}

func directive(r *Rule) Directive {
	return Directive{Sound: r.Sound, VoiceKey: r.VoiceKey}
}
