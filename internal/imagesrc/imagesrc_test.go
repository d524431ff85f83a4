package imagesrc

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	draw.Draw(img, img.Rect, image.White, image.Point{}, draw.Src)
	img.SetRGBA(1, 2, color.RGBA{10, 20, 30, 255})
	return img
}

func TestDecodeFormats(t *testing.T) {
	var p, b bytes.Buffer
	if err := png.Encode(&p, testImage()); err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(&b, testImage()); err != nil {
		t.Fatal(err)
	}
	for name, data := range map[string][]byte{"png": p.Bytes(), "bmp": b.Bytes()} {
		img, format, err := Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if format != name || img.Bounds().Size() != image.Pt(4, 3) {
			t.Fatalf("%s decoded as %s %v", name, format, img.Bounds())
		}
	}
}

func TestDecodeRejectsNonImage(t *testing.T) {
	if _, _, err := Decode(strings.NewReader("definitely not pixels")); !errors.Is(err, ErrNotImage) {
		t.Fatalf("error %v, want ErrNotImage", err)
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.png")
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	img, err := File(path)(context.Background())
	if err != nil {
		t.Fatalf("File source failed: %v", err)
	}
	r, g, b, _ := img.At(1, 2).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Fatalf("pixel = %v", img.At(1, 2))
	}
	if _, err := File(filepath.Join(t.TempDir(), "missing.png"))(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSourcesHonourCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Reader(strings.NewReader(""))(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Reader error %v", err)
	}
	if _, err := Clipboard()(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Clipboard error %v", err)
	}
}

func TestParse(t *testing.T) {
	for _, spec := range []string{"clipboard", "screen", "screen:primary", "region", "-", "some/file.png"} {
		src, err := Parse(spec, strings.NewReader(""))
		if err != nil || src == nil {
			t.Fatalf("Parse(%q) = %v, %v", spec, src, err)
		}
	}
	if _, err := Parse("", nil); err == nil {
		t.Fatal("expected error for empty spec")
	}
	src, _ := Parse("-", strings.NewReader("junk"))
	if _, err := src(context.Background()); !errors.Is(err, ErrNotImage) {
		t.Fatalf("stdin junk error %v", err)
	}
}
