// Package numeric drives the end-to-end numeric checks from spec.md §8 (the
// six-element dot product and the golden-section minimizer) using the posit
// core for every arithmetic step. Converting a result back to binary64 is
// explicitly out of the core's scope (spec.md §1 Non-goals), so this package
// carries its own small, verification-only decoder built solely on the
// public bit layout (spec.md §6.3) — it never reaches into posit's
// unexported fields.
package numeric

import (
	"math"

	"github.com/vilunov/goposit/posit"
)

// es is the exponent field width this build's posits carry (spec.md §3,
// mirrored from posit.ES since that constant is exported for exactly this
// kind of external, layout-aware consumer).
const es = posit.ES

// toFloat reconstructs the real value a posit denotes, for comparing harness
// results against a tolerance. It is not part of the posit package's public
// API and exists only so this harness can report "how close", not just
// "equal" or "not equal".
func toFloat(p posit.Posit) float64 {
	if p.IsNaR() {
		return math.NaN()
	}
	if p.IsZero() {
		return 0
	}

	bits := p.Bits()
	sign := bits[0] == 1
	runBit := bits[1]
	negative := runBit == 0

	l := 0
	i := 1
	for i < len(bits) && bits[i] == runBit {
		l++
		i++
	}
	var regimeValue int64
	if negative {
		regimeValue = int64(l)
	} else {
		regimeValue = int64(l) - 1
	}
	if i < len(bits) {
		i++ // consume terminator
	}

	var exp int64
	for j := 0; j < es; j++ {
		exp <<= 1
		if i < len(bits) {
			exp |= int64(bits[i])
			i++
		}
	}

	var fracBits []byte
	if i < len(bits) {
		fracBits = bits[i:]
	}
	frac := 0.0
	scale := 0.5
	for _, b := range fracBits {
		if b == 1 {
			frac += scale
		}
		scale /= 2
	}

	k := regimeValue
	if negative {
		k = -k
	}
	combinedExp := k*(1<<es) + exp
	significand := 1 + frac
	value := math.Ldexp(significand, int(combinedExp))
	if sign {
		value = -value
	}
	return value
}
