// Package imageio writes rendered rasters to disk, choosing the encoder
// from the output file's extension.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned when the output format is not supported.
var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

// jpegQuality is the fixed quality for JPEG output. High, since fractal
// gradients show ringing artifacts at lower settings.
const jpegQuality = 95

// Save encodes img to path. The format is chosen by extension: .png,
// .jpg/.jpeg, .bmp or .tiff/.tif.
func Save(path string, img image.Image) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := Encode(f, format, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Encode writes img to w in the named format ("png", "jpg", "jpeg",
// "bmp", "tiff", "tif").
func Encode(w io.Writer, format string, img image.Image) error {
	switch format {
	case "png":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("imageio: encode PNG: %w", err)
		}
	case "jpg", "jpeg":
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return fmt.Errorf("imageio: encode JPEG: %w", err)
		}
	case "bmp":
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("imageio: encode BMP: %w", err)
		}
	case "tiff", "tif":
		if err := tiff.Encode(w, img, nil); err != nil {
			return fmt.Errorf("imageio: encode TIFF: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return nil
}
