//go:build linux || freebsd || openbsd || netbsd || dragonfly

package capture

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
)

type unixBackend struct{}

func newBackend() platformBackend { return unixBackend{} }

func (unixBackend) Wayland() bool {
	if strings.EqualFold(strings.TrimSpace(os.Getenv("XDG_SESSION_TYPE")), "wayland") {
		return true
	}
	return os.Getenv("WAYLAND_DISPLAY") != ""
}

func (unixBackend) Monitors() ([]Monitor, error) {
	conn, screen, err := connectX()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if err := randr.Init(conn); err != nil {
		return nil, fmt.Errorf("init randr: %w", err)
	}
	res, err := randr.GetScreenResources(conn, screen.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("randr screen resources: %w", err)
	}
	var primary randr.Output
	if p, err := randr.GetOutputPrimary(conn, screen.Root).Reply(); err == nil {
		primary = p.Output
	}
	var out []Monitor
	for _, output := range res.Outputs {
		info, err := randr.GetOutputInfo(conn, output, res.ConfigTimestamp).Reply()
		if err != nil || info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
			continue
		}
		crtc, err := randr.GetCrtcInfo(conn, info.Crtc, res.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		out = append(out, Monitor{
			Index:   len(out),
			Name:    strings.TrimSpace(string(info.Name)),
			Rect:    image.Rect(int(crtc.X), int(crtc.Y), int(crtc.X)+int(crtc.Width), int(crtc.Y)+int(crtc.Height)),
			Primary: output == primary,
		})
	}
	if len(out) == 0 {
		return nil, errNoMonitors
	}
	return out, nil
}

func (unixBackend) Root(rect image.Rectangle) (*image.RGBA, error) {
	conn, screen, err := connectX()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	full := image.Rect(0, 0, int(screen.WidthInPixels), int(screen.HeightInPixels))
	if rect.Empty() {
		rect = full
	}
	rect = rect.Intersect(full)
	if rect.Empty() {
		return nil, fmt.Errorf("requested region outside the screen")
	}
	reply, err := xproto.GetImage(conn, xproto.ImageFormatZPixmap, xproto.Drawable(screen.Root),
		int16(rect.Min.X), int16(rect.Min.Y), uint16(rect.Dx()), uint16(rect.Dy()), ^uint32(0)).Reply()
	if err != nil {
		return nil, fmt.Errorf("root window pixels: %w", err)
	}
	return xImageToRGBA(xproto.Setup(conn), reply, rect.Dx(), rect.Dy())
}

func connectX() (*xgb.Conn, *xproto.ScreenInfo, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, nil, fmt.Errorf("connect X server: %w", err)
	}
	setup := xproto.Setup(conn)
	if setup == nil {
		conn.Close()
		return nil, nil, fmt.Errorf("xproto setup unavailable")
	}
	screen := setup.DefaultScreen(conn)
	if screen == nil {
		conn.Close()
		return nil, nil, fmt.Errorf("xproto screen unavailable")
	}
	return conn, screen, nil
}

// xImageToRGBA converts a ZPixmap reply in BGR(A) byte order. Screens
// without an alpha channel come back opaque.
func xImageToRGBA(setup *xproto.SetupInfo, reply *xproto.GetImageReply, width, height int) (*image.RGBA, error) {
	if setup == nil {
		return nil, fmt.Errorf("xproto setup unavailable")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("screen has empty geometry")
	}
	if reply == nil || len(reply.Data) == 0 {
		return nil, fmt.Errorf("screen pixels: empty image data")
	}
	bpp := 0
	for _, f := range setup.PixmapFormats {
		if f.Depth == reply.Depth {
			bpp = int(f.BitsPerPixel) / 8
			break
		}
	}
	if bpp < 3 {
		return nil, fmt.Errorf("unsupported screen depth %d", reply.Depth)
	}
	stride := len(reply.Data) / height
	if stride*height != len(reply.Data) || stride < width*bpp {
		return nil, fmt.Errorf("screen pixels: unexpected stride")
	}
	alpha := reply.Depth == 32 && bpp >= 4

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := reply.Data[y*stride : (y+1)*stride]
		for x := 0; x < width; x++ {
			src := row[x*bpp:]
			dst := img.Pix[img.PixOffset(x, y):]
			dst[0], dst[1], dst[2], dst[3] = src[2], src[1], src[0], 0xFF
			if alpha {
				dst[3] = src[3]
			}
		}
	}
	return img, nil
}
