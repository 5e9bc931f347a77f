// Package regime models the posit regime field: a signed-magnitude pair
// encoding a coarse power-of-useed scale as a unary run-length bit pattern.
package regime

import "github.com/vilunov/goposit/bitbuf"

// ES is the number of exponent bits carried inside the regime's remaining
// width. Fixed at 2 for this system (useed = 2^(2^ES) = 16).
const ES = 2

// Useed is the base of the regime scale, 2^(2^ES).
const Useed = 1 << (1 << ES)

// maxValue is the saturation ceiling for a regime's magnitude, standing in
// for "platform integer width" (spec.md §4.2, §4.11): regime magnitudes that
// would overflow it clamp here instead of wrapping.
const maxValue = 1<<62 - 1

// OnSaturate, if non-nil, is called with the two operand magnitudes and the
// capped result whenever saturatingAdd clamps instead of summing exactly.
// This package stays total and silent on its own (spec.md §7: saturation is
// "lossy but not signaled" at the arithmetic level) — it never logs. The
// hook exists purely so an outer tool (cmd/harness, cmd/inspector) can
// observe the event and log it at its own discretion, without the core
// depending on a logging package.
var OnSaturate func(a, b, capped int64)

// Regime is the decoded (is_negative, value) pair described in spec.md §3.
// value is always non-negative; the tag is carried separately because the
// zero-magnitude regime has two notionally distinct encodings ([1,0] for
// positive, [1] for negative) that this package treats as the same value.
type Regime struct {
	Negative bool
	Value    int64
}

// Zero is the zero-magnitude regime (useed^0 = 1 scale), canonically
// represented with Negative = false.
var Zero = Regime{}

// Neg returns the regime whose scale is the reciprocal of r's. The
// zero-magnitude regime is its own negation (spec.md §4.2): the positive
// value-0 regime is returned unchanged, and a negative value-0 regime comes
// back as the positive one, so both collapse onto Zero.
func Neg(r Regime) Regime {
	if r.Value == 0 && !r.Negative {
		return r
	}
	return Regime{Negative: !r.Negative, Value: r.Value}
}

// Add combines two regimes. Same-signed regimes sum their magnitudes
// (saturating rather than wrapping); differently-signed regimes subtract the
// smaller magnitude from the larger and inherit the larger's sign. Equal
// opposite-signed magnitudes cancel to the canonical zero-magnitude regime.
func Add(r, s Regime) Regime {
	if r.Negative == s.Negative {
		return Regime{Negative: r.Negative, Value: saturatingAdd(r.Value, s.Value)}
	}
	switch {
	case r.Value > s.Value:
		return Regime{Negative: r.Negative, Value: r.Value - s.Value}
	case s.Value > r.Value:
		return Regime{Negative: s.Negative, Value: s.Value - r.Value}
	default:
		return Zero
	}
}

func saturatingAdd(a, b int64) int64 {
	sum := a + b
	if sum < a || sum > maxValue {
		if OnSaturate != nil {
			OnSaturate(a, b, maxValue)
		}
		return maxValue
	}
	return sum
}

// BitWidth returns the length, in bits, of the unary encoding of r: value+2
// for a positive regime (the run of ones plus its zero terminator), value+1
// for a negative regime (the run of zeros plus its one terminator).
func BitWidth(r Regime) int {
	if r.Negative {
		return int(r.Value) + 1
	}
	return int(r.Value) + 2
}

// Encode renders r as its unary bit string: value+1 ones followed by a zero
// for a positive regime, or value zeros followed by a one for a negative
// regime.
func Encode(r Regime) bitbuf.Buffer {
	var bits []byte
	if r.Negative {
		for i := int64(0); i < r.Value; i++ {
			bits = append(bits, 0)
		}
		bits = append(bits, 1)
	} else {
		for i := int64(0); i <= r.Value; i++ {
			bits = append(bits, 1)
		}
		bits = append(bits, 0)
	}
	return bitbuf.FromBits(bits...)
}
