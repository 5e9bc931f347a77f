package posit

import "github.com/vilunov/goposit/bitbuf"

// Neg implements posit negation (spec.md §4.12): flip the sign bit and
// leave every other bit untouched. Zero and NaR are fixed points rather
// than falling through to the bit-flip rule: flipping NaR's only bit would
// collapse it onto the empty string (Zero's encoding), and Zero has no sign
// bit worth flipping.
func (p Posit) Neg() Posit {
	if p.IsZero() || p.IsNaR() {
		return p
	}
	bits := p.Bits()
	bits[0] ^= 1
	return Posit{bits: bitbuf.FromBits(bits...)}
}

// Abs returns the non-negative posit with the same magnitude as p.
func (p Posit) Abs() Posit {
	if p.IsZero() || p.IsNaR() {
		return p
	}
	if p.Bits()[0] == 1 {
		return p.Neg()
	}
	return p
}
