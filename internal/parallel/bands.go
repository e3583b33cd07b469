// Package parallel splits a raster into row bands and runs a band worker
// pool with a join barrier.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Band is a contiguous half-open row range [Y0, Y1) of the output raster,
// owned by exactly one worker during a render.
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// ClampWorkers resolves a requested worker count. Zero or negative means
// one worker per available CPU.
func ClampWorkers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// SplitBands divides the row range [0, height) into n contiguous,
// non-overlapping bands. The final band absorbs the remainder, so the
// partition is exact and exhaustive. n is clamped to [1, height].
func SplitBands(height, n int) []Band {
	if n < 1 {
		n = 1
	}
	if n > height {
		n = height
	}

	bands := make([]Band, 0, n)
	base := height / n
	y := 0
	for i := 0; i < n; i++ {
		y1 := y + base
		if i == n-1 {
			y1 = height
		}
		bands = append(bands, Band{Y0: y, Y1: y1})
		y = y1
	}
	return bands
}

// ForEachBand runs fn once per band on up to workers goroutines and waits
// for all of them. The first error aborts the wait and is returned; band
// workers performing pure computation never produce one.
func ForEachBand(bands []Band, workers int, fn func(Band) error) error {
	g := new(errgroup.Group)
	g.SetLimit(ClampWorkers(workers))
	for _, band := range bands {
		g.Go(func() error {
			return fn(band)
		})
	}
	return g.Wait()
}
