// Command juliafatou renders combined Julia/Fatou fractal sets to an
// image file.
package main

import (
	cryptorand "crypto/rand"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/anthonynsimon/bild/transform"

	"github.com/gofrac/juliafatou"
	"github.com/gofrac/juliafatou/internal/imageio"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("juliafatou: %v", err)
	}
}

func run() error {
	var (
		dimensions  = flag.String("dimensions", "1200x1200", "image dimensions as WIDTHxHEIGHT")
		output      = flag.String("output", "output.png", "output file (.png, .jpg, .bmp, .tiff)")
		configPath  = flag.String("config", "", "color gradient file (CSV header plus three R,G,B rows)")
		offset      = flag.String("offset", "0.0:0.0", "viewport offset as X:Y")
		scale       = flag.Float64("scale", 3.0, "scale factor")
		blur        = flag.Float64("blur", 1.0, "gaussian blur sigma, 0 disables")
		power       = flag.Int("power", 2, "the x in the equation z^x + c")
		factor      = flag.Float64("factor", -0.25, "weight of the secondary julia set")
		styleName   = flag.String("color-style", "greyscale", "color gradient to use")
		diverge     = flag.Float64("diverge", 0.01, "difference between the two rendered julia sets")
		complexArg  = flag.String("complex", "-0.4,0.6", "the c in the equation z^x + c, as RE,IM")
		intensity   = flag.Float64("intensity", 3.0, "overall intensity multiplication factor")
		inverse     = flag.Bool("inverse", false, "invert the color gradient")
		threads     = flag.Int("threads", 0, "number of worker threads, 0 means available parallelism")
		takeTime    = flag.Bool("take-time", false, "measure and report render time")
		supersample = flag.Int("supersample", 1, "render at N times the resolution, then downscale")
		verbose     = flag.Bool("verbose", false, "enable renderer logging on stderr")
	)
	flag.Parse()

	if *verbose {
		juliafatou.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	width, height, err := parseDimensions(*dimensions)
	if err != nil {
		return err
	}
	offX, offY, err := parseFloatPair(*offset, ":")
	if err != nil {
		return fmt.Errorf("parsing offset: %w", err)
	}
	c, err := parseComplexArg(*complexArg)
	if err != nil {
		return err
	}
	if *power < 1 || *power > 255 {
		return fmt.Errorf("power must be between 1 and 255, got %d", *power)
	}
	ss := *supersample
	if ss < 1 {
		return fmt.Errorf("supersample must be at least 1, got %d", ss)
	}

	cfg := juliafatou.ViewportConfig{
		Width:     width * ss,
		Height:    height * ss,
		OffsetX:   offX,
		OffsetY:   offY,
		Scale:     *scale,
		Power:     uint8(*power),
		C:         c,
		Diverge:   *diverge,
		Factor:    *factor,
		Intensity: *intensity,
		Inverse:   *inverse,
		Blur:      float32(*blur),
		Threads:   *threads,
	}

	style, err := juliafatou.ParseColorStyle(*styleName)
	if err != nil {
		return err
	}
	grad, err := buildGradient(style, *configPath)
	if err != nil {
		return err
	}

	start := time.Now()
	pm, err := juliafatou.Render(cfg, grad)
	if err != nil {
		return err
	}
	if *takeTime {
		log.Printf("time elapsed: %v", time.Since(start))
	}

	var img image.Image = pm.ToImage()
	if ss > 1 {
		img = transform.Resize(img, width, height, transform.Linear)
	}
	if err := imageio.Save(*output, img); err != nil {
		return err
	}

	log.Printf("wrote %s (%dx%d)", *output, width, height)
	return nil
}

// buildGradient resolves the gradient source: a named palette, the color
// config file, or freshly drawn random colors.
func buildGradient(style juliafatou.ColorStyle, configPath string) (*juliafatou.Gradient, error) {
	switch style {
	case juliafatou.StyleConfig:
		if configPath == "" {
			configPath = "colors.csv"
		}
		log.Printf("config file: %q", configPath)
		rows, err := loadColorFile(configPath)
		if err != nil {
			return nil, err
		}
		return juliafatou.NewGradientFromInts(rows)

	case juliafatou.StyleRandom:
		var seed [32]byte
		if _, err := cryptorand.Read(seed[:]); err != nil {
			return nil, fmt.Errorf("seeding random colors: %w", err)
		}
		colors := juliafatou.RandomColors(rand.New(rand.NewChaCha8(seed)))
		log.Printf("R,G,B\n%v\n%v\n%v", colors[0], colors[1], colors[2])
		return juliafatou.NewGradient(colors)

	default:
		return juliafatou.BuiltinGradient(style)
	}
}
