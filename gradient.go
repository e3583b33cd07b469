package juliafatou

import "math"

const (
	// gradientDomain is the scalar range covered by one gradient period.
	// Composite values outside [0, gradientDomain] are reflected back in,
	// mirroring at every multiple of the domain.
	gradientDomain = 255.0

	// lutSize is the number of entries in the dense lookup table. Large
	// enough that neighboring entries differ by at most one channel step,
	// so no banding is visible at typical resolutions.
	lutSize = 1024
)

// Gradient is an immutable color gradient: an ordered sequence of control
// colors plus a densely interpolated lookup table for O(1) color lookup.
// Build one before rendering and share it read-only across workers.
type Gradient struct {
	anchors []RGB
	lut     []RGB
}

// NewGradient builds a gradient from at least two control colors. The
// colors are spaced evenly and interpolated linearly in RGB space.
func NewGradient(colors []RGB) (*Gradient, error) {
	if len(colors) < 2 {
		return nil, configErrorf("gradient needs at least 2 control colors, got %d", len(colors))
	}

	anchors := make([]RGB, len(colors))
	copy(anchors, colors)

	g := &Gradient{
		anchors: anchors,
		lut:     make([]RGB, lutSize),
	}
	for i := range g.lut {
		t := float64(i) / float64(lutSize-1)
		g.lut[i] = blendAnchors(anchors, t)
	}
	return g, nil
}

// NewGradientFromInts builds a gradient from externally parsed channel
// triples, the entry point for color-file input where values arrive as
// untrusted integers. Exactly three control colors are required and every
// channel is range-checked.
func NewGradientFromInts(rows [][3]int) (*Gradient, error) {
	if len(rows) != 3 {
		return nil, configErrorf("color file must provide exactly 3 control colors, got %d", len(rows))
	}
	colors := make([]RGB, len(rows))
	for i, row := range rows {
		for _, ch := range row {
			if ch < 0 || ch > 255 {
				return nil, configErrorf("control color %d: channel value %d outside [0,255]", i, ch)
			}
		}
		colors[i] = RGB{uint8(row[0]), uint8(row[1]), uint8(row[2])}
	}
	return NewGradient(colors)
}

// BuiltinGradient builds the gradient of a named palette.
func BuiltinGradient(style ColorStyle) (*Gradient, error) {
	colors, err := PaletteColors(style)
	if err != nil {
		return nil, err
	}
	return NewGradient(colors)
}

// blendAnchors interpolates the anchor sequence at position t in [0,1].
// Anchors are evenly spaced; blending happens in RGB space.
func blendAnchors(anchors []RGB, t float64) RGB {
	segments := len(anchors) - 1
	pos := clamp01(t) * float64(segments)
	idx := int(pos)
	if idx >= segments {
		idx = segments - 1
	}
	local := pos - float64(idx)

	c1 := anchors[idx].colorfulValue()
	c2 := anchors[idx+1].colorfulValue()
	return fromColorful(c1.BlendRgb(c2, local))
}

// Size returns the number of entries in the lookup table.
func (g *Gradient) Size() int {
	return len(g.lut)
}

// Anchors returns a copy of the control colors.
func (g *Gradient) Anchors() []RGB {
	out := make([]RGB, len(g.anchors))
	copy(out, g.anchors)
	return out
}

// AtIndex returns the table entry at i, clamping i to the valid range.
func (g *Gradient) AtIndex(i int) RGB {
	if i < 0 {
		i = 0
	}
	if i >= len(g.lut) {
		i = len(g.lut) - 1
	}
	return g.lut[i]
}

// Index maps a composite scalar to a table index. The scalar is reflected
// into [0, gradientDomain] so runaway values fold back instead of clipping
// to a flat color. Non-finite scalars map to index 0 rather than
// propagating NaN into the table offset. With inverse set, the
// complementary index is returned.
func (g *Gradient) Index(v float64, inverse bool) int {
	var t float64
	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		t = reflect01(v / gradientDomain)
	}
	idx := int(t*float64(len(g.lut)-1) + 0.5)
	if inverse {
		idx = len(g.lut) - 1 - idx
	}
	return idx
}

// Lookup returns the color for a composite scalar.
func (g *Gradient) Lookup(v float64, inverse bool) RGB {
	return g.lut[g.Index(v, inverse)]
}

// At returns the color for a composite scalar without inversion.
func (g *Gradient) At(v float64) RGB {
	return g.Lookup(v, false)
}

// reflect01 folds t into [0,1], mirroring at every integer boundary.
func reflect01(t float64) float64 {
	t = math.Abs(t)
	period := math.Floor(t)
	t -= period
	if int64(period)%2 == 1 {
		t = 1 - t
	}
	return t
}

// clamp01 clamps a value to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
