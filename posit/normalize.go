package posit

import (
	"github.com/vilunov/goposit/bitbuf"
	"github.com/vilunov/goposit/regime"
)

// esSpan is 2^ES, the number of exponent values a single regime unit spans.
const esSpan = int64(1) << uint(ES)

// carryExponent folds an out-of-range exponent back into [0, esSpan) by
// moving whole regime units, per spec.md §4.7 step 5 and §4.9's mixed-base
// borrow: one regime unit is worth esSpan exponent units, in either
// direction.
func carryExponent(exp int64, r regime.Regime) (int64, regime.Regime) {
	for exp >= esSpan {
		r = regime.Add(r, regime.Regime{Value: 1})
		exp -= esSpan
	}
	for exp < 0 {
		r = regime.Add(r, regime.Regime{Negative: true, Value: 1})
		exp += esSpan
	}
	return exp, r
}

// normalize implements the shared renormalization state machine of
// spec.md §4.9: sig is a significand buffer whose leading bit is meant to be
// the implicit "1" of a 1.xxx value. normalize shifts/strips bits and
// carries the exponent (and, via carryExponent, the regime) until sig is
// exactly nominalWidth bits wide with a leading 1, then returns the fraction
// with that implicit bit dropped.
//
// An all-zero sig (the exact-cancellation case of a - a) has no leading 1 to
// normalize toward: normalize returns an empty fraction with exp and r
// unchanged, which fromFields would encode as a non-zero value. Callers that
// can produce one must special-case it before calling normalize.
func normalize(sig bitbuf.Buffer, nominalWidth int, exp int64, r regime.Regime) (bitbuf.Buffer, int64, regime.Regime) {
	for {
		sig = sig.TrimLeadingZeros()
		switch {
		case sig.Len() == nominalWidth:
			return sig.Slice(1, sig.Len()), exp, r
		case sig.Len() > nominalWidth:
			// More bits than the nominal width: the true scale is one
			// notch higher than assumed. Truncate the low-order bit
			// (the standard floating-point renormalize-after-carry
			// rule) rather than discard the high bit, which would throw
			// away the very carry this branch exists to account for.
			sig = sig.ShiftRight(1)
			exp++
			exp, r = carryExponent(exp, r)
		default:
			if sig.Len() == 0 {
				return sig, exp, r
			}
			sig = sig.ShiftLeft(1)
			exp--
			exp, r = carryExponent(exp, r)
		}
	}
}
