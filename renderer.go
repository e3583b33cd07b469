package juliafatou

import (
	"github.com/gofrac/juliafatou/internal/parallel"
)

// Render computes the full raster for a viewport: every pixel is mapped to
// the complex plane, both escape fields are evaluated and blended, the
// composite is colored through the gradient, and the joined raster is run
// through the Gaussian post-filter.
//
// The raster is bit-for-bit identical for any thread count. Configuration
// problems surface as a ConfigError before any worker is spawned.
func Render(cfg ViewportConfig, grad *Gradient) (*Pixmap, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if grad == nil {
		return nil, configErrorf("render needs a gradient")
	}

	workers := parallel.ClampWorkers(cfg.Threads)
	bands := parallel.SplitBands(cfg.Height, workers)
	log := Logger()
	log.Info("render start",
		"width", cfg.Width, "height", cfg.Height,
		"workers", workers, "bands", len(bands))

	comp := newCompositor(cfg)
	img := NewPixmap(cfg.Width, cfg.Height)

	// Each worker owns its band's rows of the raster exclusively, so the
	// compute phase needs no locking.
	err := parallel.ForEachBand(bands, workers, func(b parallel.Band) error {
		for y := b.Y0; y < b.Y1; y++ {
			for x := 0; x < cfg.Width; x++ {
				v := comp.sample(x, y)
				img.SetPixel(x, y, grad.Lookup(v, cfg.Inverse))
			}
		}
		log.Debug("band complete", "y0", b.Y0, "y1", b.Y1)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The blur stencil reads rows across former band boundaries; it runs
	// strictly after the join above.
	img = ApplyBlur(img, cfg.Blur)
	log.Info("render complete")
	return img, nil
}

// RenderField computes only the composite scalar field, without gradient
// mapping or blur. It shares the band pipeline with Render.
func RenderField(cfg ViewportConfig) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	workers := parallel.ClampWorkers(cfg.Threads)
	bands := parallel.SplitBands(cfg.Height, workers)

	comp := newCompositor(cfg)
	field := NewField(cfg.Width, cfg.Height)

	err := parallel.ForEachBand(bands, workers, func(b parallel.Band) error {
		for y := b.Y0; y < b.Y1; y++ {
			for x := 0; x < cfg.Width; x++ {
				field.Set(x, y, comp.sample(x, y))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return field, nil
}
