package posit

import (
	"github.com/vilunov/goposit/bitbuf"
	"github.com/vilunov/goposit/regime"
)

// Div implements posit division (spec.md §4.8). Short-circuits are checked
// on b first, exactly as spec.md orders them: NaR divisor always yields
// zero and zero divisor always yields NaR, even when a is itself NaR or
// zero; only once those are ruled out do a's own zero/NaR short-circuits
// apply.
func Div(a, b Posit) Posit {
	if b.IsNaR() {
		return Zero()
	}
	if b.IsZero() {
		return NaR()
	}
	if a.IsNaR() {
		return NaR()
	}
	if a.IsZero() {
		return Zero()
	}

	da, db := decode(a), decode(b)
	signOut := da.sign != db.sign

	p, q := da.frac.Len(), db.frac.Len()

	var expOut int64
	regimeOut := regime.Add(da.regime, regime.Neg(db.regime))
	if da.exp >= db.exp {
		expOut = da.exp - db.exp
	} else {
		regimeOut = regime.Add(regimeOut, regime.Regime{Negative: true, Value: 1})
		expOut = esSpan + da.exp - db.exp
	}

	sig := divideSignificands(da.frac, db.frac)
	frac, expOut, regimeOut := normalize(sig, p+q+1, expOut, regimeOut)
	return fromFields(signOut, regimeOut, expOut, frac)
}

// divideSignificands computes the quotient of the two "1.fraction"
// significands as a (p+q+1)-bit buffer (one leading bit plus p+q quotient
// fraction bits), via standard restoring binary long division. Both
// significands are first cross-shifted to a common bit width so their raw
// integer patterns are directly comparable (spec.md §4.8 step 4).
func divideSignificands(fa, fb bitbuf.Buffer) bitbuf.Buffer {
	p, q := fa.Len(), fb.Len()
	sigA := bitbuf.Concat(bitbuf.FromBits(1), fa) // p+1 bits
	sigB := bitbuf.Concat(bitbuf.FromBits(1), fb) // q+1 bits

	alignedA := sigA.ShiftLeft(q) // p+1+q bits
	alignedB := sigB.ShiftLeft(p) // q+1+p bits, same width as alignedA

	remainder := alignedA
	var lead byte
	if bitbuf.Compare(remainder, alignedB) >= 0 {
		lead = 1
		remainder = bitbuf.Sub(remainder, alignedB)
	}

	fracBits := p + q
	quotient := make([]byte, fracBits)
	for i := 0; i < fracBits; i++ {
		remainder = remainder.ShiftLeft(1)
		if bitbuf.Compare(remainder, alignedB) >= 0 {
			quotient[i] = 1
			remainder = bitbuf.Sub(remainder, alignedB)
		}
	}

	return bitbuf.Concat(bitbuf.FromBits(lead), bitbuf.FromBits(quotient...))
}
