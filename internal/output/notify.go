package output

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	notifyDest   = "org.freedesktop.Notifications"
	notifyPath   = "/org/freedesktop/Notifications"
	notifyMethod = "org.freedesktop.Notifications.Notify"

	notifyTimeoutMs = int32(3000)
)

// NotifySink shows the picked glyph in a desktop notification
type NotifySink struct {
	appName string
}

// NewNotifySink creates a sink talking to the session bus
func NewNotifySink() *NotifySink {
	return &NotifySink{appName: "quickpick"}
}

func (s *NotifySink) Name() string { return SinkNotify }

// Send implements Sink
func (s *NotifySink) Send(ctx context.Context, text string) error {
	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object(notifyDest, dbus.ObjectPath(notifyPath))
	// app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout
	call := obj.CallWithContext(ctx, notifyMethod, 0,
		s.appName, uint32(0), "", text, "picked with "+s.appName,
		[]string{}, map[string]dbus.Variant{}, notifyTimeoutMs)
	if call.Err != nil {
		return fmt.Errorf("notify call failed: %w", call.Err)
	}
	return nil
}
