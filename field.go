package juliafatou

import "math"

// Field is a width x height grid of composite scalars, one per pixel.
// During a render each worker writes only the rows of its own band, so no
// locking is needed.
type Field struct {
	width  int
	height int
	data   []float64
}

// NewField creates a zeroed field with the given dimensions.
func NewField(width, height int) *Field {
	return &Field{
		width:  width,
		height: height,
		data:   make([]float64, width*height),
	}
}

// Width returns the width of the field.
func (f *Field) Width() int {
	return f.width
}

// Height returns the height of the field.
func (f *Field) Height() int {
	return f.height
}

// At returns the scalar at (x, y).
func (f *Field) At(x, y int) float64 {
	return f.data[y*f.width+x]
}

// Set stores the scalar at (x, y).
func (f *Field) Set(x, y int, v float64) {
	f.data[y*f.width+x] = v
}

// Data returns the raw scalar values in row-major order.
func (f *Field) Data() []float64 {
	return f.data
}

// compositor evaluates the dual-field escape computation for one viewport.
// It is a value type; every worker carries its own copy.
type compositor struct {
	mapper     PlaneMapper
	cPrimary   complex128
	cSecondary complex128
	power      uint8
	factor     float64
	intensity  float64
}

// newCompositor derives the per-pixel pipeline from a validated config.
// The secondary parameter adds the diverge delta to the real part and
// subtracts it from the imaginary part.
func newCompositor(cfg ViewportConfig) compositor {
	return compositor{
		mapper:     NewPlaneMapper(cfg),
		cPrimary:   cfg.C,
		cSecondary: cfg.C + complex(cfg.Diverge, -cfg.Diverge),
		power:      cfg.Power,
		factor:     cfg.Factor,
		intensity:  cfg.Intensity,
	}
}

// sample computes the composite scalar for one pixel: both escape values
// from the same mapped seed, blended as primary + factor*secondary, then
// scaled by the intensity. The result is always finite: extreme factor or
// intensity values can overflow the blend even though both escape values
// are bounded, so the composite is clamped before it leaves the pipeline.
func (c compositor) sample(px, py int) float64 {
	z0 := c.mapper.Point(px, py)
	primary := escapeTime(z0, c.cPrimary, c.power)
	secondary := escapeTime(z0, c.cSecondary, c.power)
	return clampFinite((primary + c.factor*secondary) * c.intensity)
}

// clampFinite bounds a composite scalar to a finite value. Infinities pin
// to the largest finite float of the same sign; NaN maps to zero.
func clampFinite(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}
