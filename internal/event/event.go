// Package event parses hook payloads sent by the coding assistant.
//
// A payload arrives once per invocation as a single JSON object on
// stdin. Only a handful of fields drive feedback decisions; everything
// else is retained raw for auditing. Missing or mistyped fields degrade
// to zero values — malformed JSON is the only error this package ever
// reports.
package event

import (
	"encoding/json"
	"fmt"
)

// Payload is one hook event from the assistant. Fields are extracted
// tolerantly: a field of the wrong JSON type reads as its zero value.
type Payload struct {
	HookEventName    string
	ToolName         string
	Command          string
	SessionID        string
	CWD              string
	TranscriptPath   string
	NotificationType string
	Message          string

	raw json.RawMessage
}

// Parse decodes a hook payload. It is the only operation in the
// pipeline allowed to surface a fatal error: bytes that are not valid
// JSON are rejected, while any valid JSON document — even one missing
// every expected field — parses fine with zero values.
func Parse(raw []byte) (*Payload, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("parse hook payload: %w", err)
	}

	p := &Payload{
		HookEventName:    str(fields, "hook_event_name"),
		ToolName:         str(fields, "tool_name"),
		SessionID:        str(fields, "session_id"),
		CWD:              str(fields, "cwd"),
		TranscriptPath:   str(fields, "transcript_path"),
		NotificationType: str(fields, "notification_type"),
		Message:          str(fields, "message"),
		raw:              append(json.RawMessage(nil), raw...),
	}

	if input, ok := fields["tool_input"].(map[string]any); ok {
		p.Command = str(input, "command")
	}

	return p, nil
}

// str reads a string field from a decoded JSON object, returning ""
// when the field is absent or not a string.
func str(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

// EventName returns the lifecycle event name, empty if absent.
func (p *Payload) EventName() string {
	if p == nil {
		return ""
	}
	return p.HookEventName
}

// Tool returns the invoked tool name, empty if absent.
func (p *Payload) Tool() string {
	if p == nil {
		return ""
	}
	return p.ToolName
}

// ShellCommand returns the nested shell command, empty if absent.
func (p *Payload) ShellCommand() string {
	if p == nil {
		return ""
	}
	return p.Command
}

// Raw returns the original payload bytes for auditing.
func (p *Payload) Raw() json.RawMessage {
	if p == nil {
		return nil
	}
	return p.raw
}
