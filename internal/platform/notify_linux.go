//go:build linux

package platform

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// Notify sends a freedesktop.org notification over the session bus.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("dbus connect: %w", err)
	}
	defer conn.Close()

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = -1
	}
	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		AppName, uint32(0), opts.IconPath, title, body, []string{}, map[string]dbus.Variant{}, timeout)
	return call.Err
}
