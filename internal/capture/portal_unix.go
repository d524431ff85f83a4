//go:build linux || freebsd || openbsd || netbsd || dragonfly

package capture

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	portalDest       = "org.freedesktop.portal.Desktop"
	portalPath       = "/org/freedesktop/portal/desktop"
	portalScreenshot = "org.freedesktop.portal.Screenshot.Screenshot"
	portalResponse   = "org.freedesktop.portal.Request.Response"
)

var portalHandleToken = func() string {
	return fmt.Sprintf("shinypaint%d", time.Now().UnixNano())
}

func (unixBackend) Portal(ctx context.Context, interactive bool) (*image.RGBA, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("dbus connect: %w", err)
	}
	defer conn.Close()

	sigc := make(chan *dbus.Signal, 4)
	conn.Signal(sigc)

	var handle dbus.ObjectPath
	call := conn.Object(portalDest, portalPath).CallWithContext(ctx, portalScreenshot, 0, "", portalOptions(interactive))
	if call.Err != nil {
		return nil, fmt.Errorf("portal screenshot call: %w", call.Err)
	}
	if err := call.Store(&handle); err != nil {
		return nil, fmt.Errorf("portal screenshot response: %w", err)
	}
	if err := conn.AddMatchSignal(dbus.WithMatchObjectPath(handle), dbus.WithMatchInterface("org.freedesktop.portal.Request"), dbus.WithMatchMember("Response")); err != nil {
		return nil, fmt.Errorf("portal screenshot subscribe: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case sig, ok := <-sigc:
			if !ok {
				return nil, errors.New("portal screenshot: bus closed")
			}
			if sig.Path != handle || sig.Name != portalResponse {
				continue
			}
			uri, err := portalURI(sig.Body)
			if err != nil {
				return nil, err
			}
			return loadScreenshot(uri)
		}
	}
}

func portalOptions(interactive bool) map[string]dbus.Variant {
	return map[string]dbus.Variant{
		"interactive":  dbus.MakeVariant(interactive),
		"modal":        dbus.MakeVariant(interactive),
		"handle_token": dbus.MakeVariant(portalHandleToken()),
	}
}

// portalURI extracts the file URI from a Request.Response body
// (response code, results).
func portalURI(body []interface{}) (string, error) {
	if len(body) < 2 {
		return "", errors.New("portal screenshot: malformed response")
	}
	if code, ok := body[0].(uint32); ok && code != 0 {
		return "", fmt.Errorf("portal screenshot cancelled (response %d)", code)
	}
	results, ok := body[1].(map[string]dbus.Variant)
	if !ok {
		return "", errors.New("portal screenshot: malformed results")
	}
	v, ok := results["uri"]
	if !ok {
		return "", errors.New("portal screenshot: response missing image data")
	}
	uri, ok := v.Value().(string)
	if !ok {
		return "", errors.New("portal screenshot: uri is not a string")
	}
	return uri, nil
}

func loadScreenshot(uri string) (*image.RGBA, error) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" {
		return nil, fmt.Errorf("portal screenshot: unsupported uri %q", uri)
	}
	f, err := os.Open(u.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", u.Path, err)
	}
	defer f.Close()
	defer func() {
		if err := os.Remove(u.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("capture: remove %s: %v", u.Path, err)
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", u.Path, err)
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba, nil
}
