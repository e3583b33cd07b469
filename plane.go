package juliafatou

// PlaneMapper converts pixel coordinates to points on the complex plane.
// The mapping preserves aspect ratio: the shorter image dimension covers a
// span of 2*scale, the longer one is widened proportionally.
type PlaneMapper struct {
	step         float64
	halfW, halfH float64
	offX, offY   float64
}

// NewPlaneMapper derives the mapping for a viewport. The configuration is
// assumed validated.
func NewPlaneMapper(cfg ViewportConfig) PlaneMapper {
	short := min(cfg.Width, cfg.Height)
	return PlaneMapper{
		step:  2 * cfg.Scale / float64(short),
		halfW: float64(cfg.Width) / 2,
		halfH: float64(cfg.Height) / 2,
		offX:  cfg.OffsetX,
		offY:  cfg.OffsetY,
	}
}

// Point maps pixel (px, py) to its complex-plane coordinate. Increasing
// offsets shift the viewport up/left, so the view is centered on
// (-offsetX, -offsetY).
func (m PlaneMapper) Point(px, py int) complex128 {
	re := (float64(px)-m.halfW)*m.step - m.offX
	im := (float64(py)-m.halfH)*m.step - m.offY
	return complex(re, im)
}
