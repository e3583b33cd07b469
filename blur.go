package juliafatou

import "math"

// ApplyBlur runs a separable Gaussian blur over the raster and returns the
// result. A sigma that is zero, negative or NaN is an exact no-op returning
// the input unchanged. Edge pixels replicate the nearest in-bounds sample,
// so the output has the same dimensions as the input.
//
// The two-pass separable algorithm convolves rows, then columns, for
// O(w*h*r) work instead of O(w*h*r^2). It must only run after all row
// bands have been joined: the kernel reads neighboring rows across former
// band boundaries.
func ApplyBlur(p *Pixmap, sigma float32) *Pixmap {
	// The negated comparison also rejects NaN, which would otherwise
	// poison the kernel.
	if p == nil || !(sigma > 0) {
		return p
	}

	kernel := gaussianKernel(float64(sigma))
	w, h := p.width, p.height

	// Intermediate rows stay in float32 so the vertical pass does not
	// accumulate quantization error from the horizontal one.
	temp := make([]float32, w*h*3)
	blurRows(p.data, temp, w, h, kernel)

	out := NewPixmap(w, h)
	blurColumns(temp, out.data, w, h, kernel)
	return out
}

// blurRows applies the 1D kernel horizontally, reading uint8 pixels and
// writing float32 intermediates.
func blurRows(src []uint8, dst []float32, w, h int, kernel []float32) {
	half := len(kernel) / 2
	for y := 0; y < h; y++ {
		row := y * w * 3
		for x := 0; x < w; x++ {
			var r, g, b float32
			for k, weight := range kernel {
				kx := x + k - half
				if kx < 0 {
					kx = 0
				} else if kx >= w {
					kx = w - 1
				}
				i := row + kx*3
				r += float32(src[i+0]) * weight
				g += float32(src[i+1]) * weight
				b += float32(src[i+2]) * weight
			}
			i := row + x*3
			dst[i+0] = r
			dst[i+1] = g
			dst[i+2] = b
		}
	}
}

// blurColumns applies the 1D kernel vertically, reading float32
// intermediates and writing rounded uint8 pixels.
func blurColumns(src []float32, dst []uint8, w, h int, kernel []float32) {
	half := len(kernel) / 2
	for y := 0; y < h; y++ {
		row := y * w * 3
		for x := 0; x < w; x++ {
			var r, g, b float32
			for k, weight := range kernel {
				ky := y + k - half
				if ky < 0 {
					ky = 0
				} else if ky >= h {
					ky = h - 1
				}
				i := (ky*w + x) * 3
				r += src[i+0] * weight
				g += src[i+1] * weight
				b += src[i+2] * weight
			}
			i := row + x*3
			dst[i+0] = clampUint8(r)
			dst[i+1] = clampUint8(g)
			dst[i+2] = clampUint8(b)
		}
	}
}

// gaussianKernel generates a normalized 1D Gaussian kernel with the given
// sigma. The half-size ceil(3*sigma) covers 99.7% of the distribution.
func gaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1.0}
	}

	half := int(math.Ceil(sigma * 3))
	size := half*2 + 1
	kernel := make([]float32, size)

	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := 0; i < size; i++ {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}

	inv := float32(1.0 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// clampUint8 clamps a float32 to [0, 255] and rounds to the nearest uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
