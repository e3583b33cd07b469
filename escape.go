package juliafatou

import "math"

const (
	// maxIterations caps every escape loop. It bounds the smoothed escape
	// value and guarantees termination.
	maxIterations = 1024

	// escapeRadiusSq is the squared modulus beyond which an orbit counts
	// as escaped.
	escapeRadiusSq = 5.0
)

// escapeTime iterates z -> z^power + c from seed z0 until the orbit leaves
// the escape radius or the iteration cap is reached. Escaped orbits yield a
// smoothed iteration count so color bands show no stair-stepping; bounded
// orbits yield the cap. The result is always finite and within
// [0, maxIterations].
func escapeTime(z0, c complex128, power uint8) float64 {
	z := z0
	for i := 0; i < maxIterations; i++ {
		normSq := real(z)*real(z) + imag(z)*imag(z)
		if !(normSq <= escapeRadiusSq) {
			// The negated comparison also catches NaN, which can
			// appear after an overflowing step. Treat it as an
			// escape at the current iteration, unsmoothed.
			if math.IsNaN(normSq) || math.IsInf(normSq, 1) {
				return float64(i)
			}
			return clampEscape(smoothEscape(normSq, i))
		}
		z = ipow(z, power) + c
	}
	return maxIterations
}

// smoothEscape adds the fractional correction log(log |z|^2)/log 2 to the
// integer escape count, the standard normalized iteration count.
func smoothEscape(normSq float64, i int) float64 {
	return float64(i) + 2 - math.Log(math.Log(normSq))/math.Ln2
}

// clampEscape bounds a smoothed escape value to [0, maxIterations]. Very
// large |z| at escape pushes the correction past the integer count; very
// small overshoot pushes it slightly above the cap.
func clampEscape(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > maxIterations {
		return maxIterations
	}
	return v
}

// ipow raises z to a small integer power by binary exponentiation. The
// operation order is fixed, so results are identical on every run.
func ipow(z complex128, n uint8) complex128 {
	result := complex(1.0, 0)
	base := z
	for n > 0 {
		if n&1 == 1 {
			result *= base
		}
		base *= base
		n >>= 1
	}
	return result
}
