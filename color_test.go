package juliafatou

import (
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestRGBColor(t *testing.T) {
	c := RGB{12, 34, 56}
	want := color.NRGBA{R: 12, G: 34, B: 56, A: 0xff}
	if got := c.Color(); got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
}

func TestRGBString(t *testing.T) {
	if got := (RGB{255, 0, 127}).String(); got != "255,0,127" {
		t.Errorf("String() = %q, want \"255,0,127\"", got)
	}
}

func TestColorfulRoundTrip(t *testing.T) {
	for _, c := range []RGB{{0, 0, 0}, {255, 255, 255}, {5, 71, 92}, {209, 27, 79}} {
		if got := fromColorful(c.colorfulValue()); got != c {
			t.Errorf("round trip %v = %v", c, got)
		}
	}
}

func TestFromColorfulClamps(t *testing.T) {
	over := colorful.Color{R: 1.2, G: -0.1, B: 0.5}
	got := fromColorful(over)
	if got.R != 255 {
		t.Errorf("over-range red = %d, want 255", got.R)
	}
	if got.G != 0 {
		t.Errorf("under-range green = %d, want 0", got.G)
	}
}
