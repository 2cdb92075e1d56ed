// Package notify sends best-effort desktop notifications over D-Bus
// using the org.freedesktop.Notifications interface. It is an optional
// extra channel for attention events; every failure is logged and
// swallowed.
package notify

import (
	"log/slog"

	"github.com/godbus/dbus/v5"
)

const (
	busName    = "org.freedesktop.Notifications"
	objectPath = "/org/freedesktop/Notifications"
	method     = "org.freedesktop.Notifications.Notify"
	appName    = "koe"
)

// Notifier posts desktop notifications on the session bus.
type Notifier struct {
	conn   *dbus.Conn
	logger *slog.Logger
}

// New connects to the session bus. A host without one (headless, no
// desktop) yields an unavailable Notifier, not an error the caller has
// to handle.
func New(logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := dbus.SessionBus()
	if err != nil {
		logger.Debug("session bus unavailable", "error", err)
		return &Notifier{logger: logger}
	}
	return &Notifier{conn: conn, logger: logger}
}

// Available reports whether the session bus could be reached.
func (n *Notifier) Available() bool {
	return n != nil && n.conn != nil
}

// Send posts one transient notification. Failure is logged, never
// escalated.
func (n *Notifier) Send(summary, body string) bool {
	if !n.Available() {
		return false
	}

	// Notify(app_name, replaces_id, app_icon, summary, body, actions,
	// hints, expire_timeout)
	obj := n.conn.Object(busName, dbus.ObjectPath(objectPath))
	call := obj.Call(method, 0,
		appName,
		uint32(0),
		"",
		summary,
		body,
		[]string{},
		map[string]dbus.Variant{},
		int32(5000),
	)
	if call.Err != nil {
		n.logger.Warn("desktop notification failed", "error", call.Err)
		return false
	}
	return true
}

// Close releases the bus connection.
func (n *Notifier) Close() {
	if n != nil && n.conn != nil {
		_ = n.conn.Close()
	}
}
