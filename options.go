package juliafatou

import "math"

// ViewportConfig describes one render: the raster dimensions, the viewport
// on the complex plane, the parameters of the two Julia sets and the
// post-processing knobs. It is a value type; workers share it read-only.
type ViewportConfig struct {
	// Width and Height are the raster dimensions in pixels.
	Width, Height int

	// OffsetX and OffsetY shift the viewport. Increasing values move the
	// view up and to the left.
	OffsetX, OffsetY float64

	// Scale is the half-span of the shorter image dimension on the plane.
	Scale float64

	// Power is the exponent x in z^x + c. Must be at least 1.
	Power uint8

	// C is the complex parameter of the primary Julia set.
	C complex128

	// Diverge is the parameter gap between the two sets: the secondary
	// set iterates with C + (Diverge, -Diverge).
	Diverge float64

	// Factor weighs the secondary escape value in the composite.
	Factor float64

	// Intensity scales the composite before gradient lookup.
	Intensity float64

	// Inverse flips the gradient lookup to the complementary index.
	Inverse bool

	// Blur is the sigma of the Gaussian post-filter. Zero disables it.
	Blur float32

	// Threads is the worker count. Zero or negative means one worker per
	// available CPU.
	Threads int
}

// DefaultViewport returns the canonical render configuration: a centered
// 1200x1200 view of the classic c = -0.4+0.6i Julia pair.
func DefaultViewport() ViewportConfig {
	return ViewportConfig{
		Width:     1200,
		Height:    1200,
		Scale:     3.0,
		Power:     2,
		C:         complex(-0.4, 0.6),
		Diverge:   0.01,
		Factor:    -0.25,
		Intensity: 3.0,
		Blur:      1.0,
	}
}

// Validate reports a ConfigError for parameters no render can satisfy.
// Thread counts are not validated; the partitioner clamps them.
func (c ViewportConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return configErrorf("invalid dimensions %dx%d", c.Width, c.Height)
	}
	if !(c.Scale > 0) || math.IsInf(c.Scale, 0) {
		return configErrorf("scale must be a positive finite number, got %v", c.Scale)
	}
	if c.Power < 1 {
		return configErrorf("power must be at least 1")
	}
	if c.Blur < 0 {
		return configErrorf("blur strength must not be negative, got %v", c.Blur)
	}
	for name, v := range map[string]float64{
		"blur":       float64(c.Blur),
		"offset x":   c.OffsetX,
		"offset y":   c.OffsetY,
		"diverge":    c.Diverge,
		"factor":     c.Factor,
		"intensity":  c.Intensity,
		"complex re": real(c.C),
		"complex im": imag(c.C),
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return configErrorf("%s must be finite, got %v", name, v)
		}
	}
	return nil
}
