// Package juliafatou renders still images of combined Julia/Fatou sets.
//
// # Overview
//
// For every pixel the renderer evaluates two related escape-time
// computations of the dynamical system z -> z^x + c, blends the two smoothed
// escape values into one composite scalar, maps that scalar through a color
// gradient and finally applies a Gaussian post-blur to the raster.
//
// # Quick Start
//
//	import "github.com/gofrac/juliafatou"
//
//	cfg := juliafatou.DefaultViewport()
//	cfg.Width, cfg.Height = 1920, 1080
//
//	grad, err := juliafatou.BuiltinGradient(juliafatou.StylePlasma)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	img, err := juliafatou.Render(cfg, grad)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	img.SavePNG("output.png")
//
// # Coordinate System
//
// Pixel (0,0) is the top-left corner. The shorter image dimension maps to a
// span of 2*scale on the complex plane; the longer dimension is widened
// proportionally so circles stay circles. Increasing the offset shifts the
// viewport up and to the left.
//
// # Determinism
//
// A render is a pure function of its ViewportConfig and Gradient. The row
// bands may be computed by any number of workers in any order; the output
// raster is bit-for-bit identical regardless of the thread count.
package juliafatou
