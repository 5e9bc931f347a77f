// Package posit implements tapered-precision posit arithmetic: variable-width
// bit strings carrying a sign, a unary regime field, a fixed-width exponent,
// and a fraction, with total (never-erroring) add/sub/mul/div/compare
// operations and conversion from binary64.
package posit

import (
	"github.com/vilunov/goposit/bitbuf"
	"github.com/vilunov/goposit/regime"
)

// ES is the number of exponent bits carried by every posit in this system.
const ES = regime.ES

// Posit is an immutable, variable-width bit string in the tapered posit
// encoding described in spec.md §3. The zero value is Zero (the empty bit
// string); every operator returns a freshly built value and never mutates
// its operands.
type Posit struct {
	bits bitbuf.Buffer
}

var (
	zero = Posit{}
	nar  = Posit{bits: bitbuf.FromBits(1)}
	one  = fromFields(false, regime.Zero, 0, bitbuf.New())
)

// Zero returns the canonical zero posit: the empty bit string.
func Zero() Posit { return zero }

// One returns the posit representing the real value 1.
func One() Posit { return one }

// NaR returns the "not-a-real" sentinel: the single bit string "1".
func NaR() Posit { return nar }

// FromBits wraps a raw MSB-first bit string as a Posit, for callers (tests,
// the FFI shim, the inspector) that already hold a decoded bit pattern. It
// does not validate canonical form; callers constructing values by hand are
// responsible for pruning (see Prune).
func FromBits(bits ...byte) Posit {
	return Posit{bits: bitbuf.FromBits(bits...)}
}

// Bits returns the raw MSB-first 0/1 bits of p.
func (p Posit) Bits() []byte {
	return p.bits.Bits()
}

// String renders p as a string of '0'/'1' characters.
func (p Posit) String() string {
	return p.bits.String()
}

// IsZero reports whether p is the zero sentinel (the empty bit string).
func (p Posit) IsZero() bool {
	return p.bits.Len() == 0
}

// IsNaR reports whether p is the "not-a-real" sentinel.
func (p Posit) IsNaR() bool {
	return p.bits.Len() == 1 && p.bits.At(0) == 1
}

// decoded holds the four fields of a non-sentinel posit. frac.Len() is how
// many fraction bits the posit actually carries (needed by the arithmetic
// operators to reconstruct the implicit-1 significand width).
type decoded struct {
	sign   bool
	regime regime.Regime
	exp    int64
	frac   bitbuf.Buffer
}

// decode splits a non-zero, non-NaR posit into its fields per spec.md §4.3.
func decode(p Posit) decoded {
	b := p.bits
	sign := b.At(0) == 1
	runBit := b.At(1)
	negative := runBit == 0

	l := 0
	i := 1
	terminated := false
	for i < b.Len() {
		if b.At(i) != runBit {
			terminated = true
			break
		}
		l++
		i++
	}

	var value int64
	if negative {
		value = int64(l)
	} else {
		value = int64(l) - 1
	}

	regimeEnd := i
	if terminated {
		regimeEnd = i + 1 // consume the terminator bit
	}

	expEnd := regimeEnd + ES
	expBits := b.Slice(regimeEnd, expEnd)
	var exp int64
	for j := 0; j < ES; j++ {
		exp <<= 1
		exp |= int64(expBits.At(j))
	}

	frac := b.Slice(expEnd, b.Len())

	return decoded{
		sign:   sign,
		regime: regime.Regime{Negative: negative, Value: value},
		exp:    exp,
		frac:   frac,
	}
}

// fromFields composes sign/regime/exponent/fraction into a canonical
// (pruned) posit, per spec.md §4.4.
func fromFields(sign bool, r regime.Regime, exp int64, frac bitbuf.Buffer) Posit {
	signBit := byte(0)
	if sign {
		signBit = 1
	}
	expBits := make([]byte, ES)
	for j := ES - 1; j >= 0; j-- {
		expBits[j] = byte(exp & 1)
		exp >>= 1
	}
	whole := bitbuf.Concat(
		bitbuf.FromBits(signBit),
		regime.Encode(r),
		bitbuf.FromBits(expBits...),
		frac,
	)
	return Posit{bits: prune(whole)}
}

// prune strips trailing (least-significant) zero bits, the canonical form
// required by spec.md §3. Pruning a pruned posit is a no-op (spec.md §8
// property 7): once the last bit is 1 (or the buffer is empty) there is
// nothing left to strip.
func prune(b bitbuf.Buffer) bitbuf.Buffer {
	for b.Len() > 0 {
		last := b.At(b.Len() - 1)
		if last != 0 {
			break
		}
		b, _ = b.Pop()
	}
	return b
}

// Prune re-canonicalizes p by stripping trailing zero bits. Exposed for
// callers that build a Posit from raw bits (FromBits) without going through
// fromFields.
func Prune(p Posit) Posit {
	return Posit{bits: prune(p.bits)}
}
