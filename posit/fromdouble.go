package posit

import (
	"math"

	"github.com/vilunov/goposit/bitbuf"
	"github.com/vilunov/goposit/regime"
)

// FromDouble converts a binary64 value to its posit encoding (spec.md
// §4.10). NaN and ±Inf map to NaR; 0.0 maps to Zero, the empty bit string
// (the source this system is adapted from maps 0.0 to NaR instead — see
// the open-question resolution in DESIGN.md).
func FromDouble(x float64) Posit {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return NaR()
	}
	if x == 0 {
		return Zero()
	}

	raw := math.Float64bits(x)
	sign := raw>>63 == 1
	rawExp := int64((raw >> 52) & 0x7ff)
	mantissa := raw & (1<<52 - 1)

	var e int64
	var sig uint64
	if rawExp == 0 {
		// Subnormal: shift up until the leading 1 surfaces at bit 52,
		// decrementing e to compensate.
		e = -1022
		sig = mantissa
		for sig&(1<<52) == 0 {
			sig <<= 1
			e--
		}
	} else {
		e = rawExp - 1023
		sig = mantissa
	}
	sig &^= 1 << 52 // drop the now-implicit leading bit; sig is the 52-bit fraction

	fracBits := make([]byte, 52)
	for i := 0; i < 52; i++ {
		fracBits[51-i] = byte((sig >> uint(i)) & 1)
	}

	regimeValue := e >> uint(ES) // arithmetic shift: floor division by esSpan
	exp := e & (esSpan - 1)

	var r regime.Regime
	if regimeValue >= 0 {
		r = regime.Regime{Negative: false, Value: regimeValue}
	} else {
		r = regime.Regime{Negative: true, Value: -regimeValue}
	}

	return fromFields(sign, r, exp, bitbuf.FromBits(fracBits...))
}
