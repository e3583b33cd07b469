package juliafatou

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit-per-channel opaque color, the unit of both gradient
// control colors and raster pixels.
type RGB struct {
	R, G, B uint8
}

// Color converts the value to the standard color.Color interface.
func (c RGB) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// String returns the color as "R,G,B" decimal channels.
func (c RGB) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// colorfulValue converts to the go-colorful representation used during
// gradient interpolation.
func (c RGB) colorfulValue() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// fromColorful converts an interpolated go-colorful color back to RGB,
// clamping each channel to the displayable range.
func fromColorful(c colorful.Color) RGB {
	return RGB{
		R: uint8(clamp255(c.R*255) + 0.5),
		G: uint8(clamp255(c.G*255) + 0.5),
		B: uint8(clamp255(c.B*255) + 0.5),
	}
}

// clamp255 restricts a value to [0, 255].
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
