//go:build linux || freebsd || openbsd || netbsd || dragonfly

package capture

import (
	"image/color"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/jezek/xgb/xproto"
)

func TestWayland(t *testing.T) {
	var b unixBackend
	t.Setenv("XDG_SESSION_TYPE", "wayland")
	t.Setenv("WAYLAND_DISPLAY", "")
	if !b.Wayland() {
		t.Fatal("expected wayland when XDG_SESSION_TYPE=wayland")
	}
	t.Setenv("XDG_SESSION_TYPE", "x11")
	t.Setenv("WAYLAND_DISPLAY", "wayland-0")
	if !b.Wayland() {
		t.Fatal("expected wayland when WAYLAND_DISPLAY is set")
	}
	t.Setenv("WAYLAND_DISPLAY", "")
	if b.Wayland() {
		t.Fatal("did not expect wayland")
	}
}

func TestXImageToRGBA(t *testing.T) {
	setup := &xproto.SetupInfo{PixmapFormats: []xproto.Format{{Depth: 24, BitsPerPixel: 32}}}
	reply := &xproto.GetImageReply{Depth: 24, Data: []byte{
		0x30, 0x20, 0x10, 0x00, 0x03, 0x02, 0x01, 0x00,
	}}
	img, err := xImageToRGBA(setup, reply, 2, 1)
	if err != nil {
		t.Fatalf("xImageToRGBA failed: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0x10, 0x20, 0x30, 0xFF}) {
		t.Fatalf("pixel 0 = %+v", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{0x01, 0x02, 0x03, 0xFF}) {
		t.Fatalf("pixel 1 = %+v", got)
	}
	if _, err := xImageToRGBA(setup, &xproto.GetImageReply{Depth: 8, Data: []byte{1}}, 1, 1); err == nil {
		t.Fatal("expected error for unknown depth")
	}
}

func TestPortalURI(t *testing.T) {
	ok := []interface{}{uint32(0), map[string]dbus.Variant{"uri": dbus.MakeVariant("file:///tmp/shot.png")}}
	uri, err := portalURI(ok)
	if err != nil || uri != "file:///tmp/shot.png" {
		t.Fatalf("portalURI = %q, %v", uri, err)
	}
	cancelled := []interface{}{uint32(1), map[string]dbus.Variant{}}
	if _, err := portalURI(cancelled); err == nil {
		t.Fatal("expected error for cancelled request")
	}
	if _, err := portalURI([]interface{}{uint32(0)}); err == nil {
		t.Fatal("expected error for short body")
	}
}

func TestPortalOptions(t *testing.T) {
	prev := portalHandleToken
	portalHandleToken = func() string { return "tok" }
	t.Cleanup(func() { portalHandleToken = prev })
	opts := portalOptions(true)
	if v := opts["handle_token"].Value(); v != "tok" {
		t.Fatalf("handle_token = %v", v)
	}
	if v := opts["interactive"].Value(); v != true {
		t.Fatalf("interactive = %v", v)
	}
}
