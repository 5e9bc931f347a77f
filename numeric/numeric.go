package numeric

import "github.com/vilunov/goposit/posit"

// DotProduct evaluates the dot product of v1 and v2 entirely in posit
// arithmetic: each element is converted with posit.FromDouble, multiplied
// pairwise, and accumulated left to right with posit.Add. Callers with
// mismatched-length vectors get the shorter length's worth of terms.
func DotProduct(v1, v2 []float64) posit.Posit {
	n := len(v1)
	if len(v2) < n {
		n = len(v2)
	}

	sum := posit.Zero()
	for i := 0; i < n; i++ {
		a := posit.FromDouble(v1[i])
		b := posit.FromDouble(v2[i])
		sum = posit.Add(sum, posit.Mul(a, b))
	}
	return sum
}

// DotProductValue is DotProduct's result reconstructed as a float64, for
// comparing against a numeric tolerance in the end-to-end check (spec.md §8).
func DotProductValue(v1, v2 []float64) float64 {
	return toFloat(DotProduct(v1, v2))
}

// Minimize locates the minimum of f on [lo, hi] in two phases: a coarse
// sweep in steps of probeStep to bracket the valley, then golden-section
// search narrowing that bracket until its width is within tol or
// maxIterations narrowing steps have run.
func Minimize(f func(float64) float64, lo, hi, probeStep, tol float64, maxIterations int) float64 {
	bLo, bHi := bracket(f, lo, hi, probeStep)
	return goldenSection(f, bLo, bHi, tol, maxIterations)
}

// bracket sweeps [lo, hi] in probeStep increments until a sample's value
// rises above the previous one, and returns the interval from one step
// before that previous sample to the rising sample, clamped to [lo, hi].
// If no sample rises (or probeStep <= 0) it returns [lo, hi].
func bracket(f func(float64) float64, lo, hi, probeStep float64) (float64, float64) {
	if probeStep <= 0 {
		return lo, hi
	}
	prevX, prevV := lo, f(lo)
	for x := lo + probeStep; x <= hi; x += probeStep {
		v := f(x)
		if v > prevV {
			left := prevX - probeStep
			if left < lo {
				left = lo
			}
			right := x
			if right > hi {
				right = hi
			}
			return left, right
		}
		prevX, prevV = x, v
	}
	return lo, hi
}

// goldenSection narrows [lo, hi] toward f's minimum, keeping exactly two
// interior probe points per iteration and reusing whichever one still
// brackets the smaller interval rather than recomputing both from scratch.
func goldenSection(f func(float64) float64, lo, hi, tol float64, maxIterations int) float64 {
	const invPhi = 0.6180339887498949 // (sqrt(5)-1)/2

	c := hi - invPhi*(hi-lo)
	d := lo + invPhi*(hi-lo)
	fc, fd := f(c), f(d)

	for i := 0; i < maxIterations && hi-lo > tol; i++ {
		if fc < fd {
			hi = d
			d, fd = c, fc
			c = hi - invPhi*(hi-lo)
			fc = f(c)
		} else {
			lo = c
			c, fc = d, fd
			d = lo + invPhi*(hi-lo)
			fd = f(d)
		}
	}

	return (lo + hi) / 2
}

// Parabola returns a function implementing (x-center)^2, the shape spec.md
// §8's minimizer check bisects.
func Parabola(center float64) func(float64) float64 {
	return func(x float64) float64 {
		d := x - center
		return d * d
	}
}
