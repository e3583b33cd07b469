package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 50), G: uint8(y * 80), B: 128, A: 0xff})
		}
	}
	return img
}

func TestEncodePNGRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, "png", testImage()); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 5 || b.Dy() != 3 {
		t.Errorf("decoded bounds = %v, want 5x3", b)
	}
}

func TestEncodeBMPRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, "bmp", testImage()); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatalf("bmp.Decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 5 || b.Dy() != 3 {
		t.Errorf("decoded bounds = %v, want 5x3", b)
	}
}

func TestEncodeKnownFormats(t *testing.T) {
	for _, format := range []string{"png", "jpg", "jpeg", "bmp", "tiff", "tif"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, format, testImage()); err != nil {
				t.Errorf("Encode(%q): %v", format, err)
			}
			if buf.Len() == 0 {
				t.Errorf("Encode(%q) wrote no data", format)
			}
		})
	}
}

func TestEncodeUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, "webp", testImage())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSaveDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "out.png")
	if err := Save(path, testImage()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := png.Decode(f); err != nil {
		t.Errorf("saved file is not a valid PNG: %v", err)
	}
}

func TestSaveUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	err := Save(path, testImage())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}
