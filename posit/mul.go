package posit

import (
	"github.com/vilunov/goposit/bitbuf"
	"github.com/vilunov/goposit/regime"
)

// Mul implements posit multiplication (spec.md §4.7): zero/NaR short-circuit,
// then a shift-and-add product of the two "1.fraction" significands,
// renormalized through the shared state machine and carried into the
// exponent and regime.
func Mul(a, b Posit) Posit {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	if a.IsNaR() || b.IsNaR() {
		return NaR()
	}

	da, db := decode(a), decode(b)
	signOut := da.sign != db.sign
	regimeOut := regime.Add(da.regime, db.regime)
	// da.exp+db.exp can land outside [0, esSpan) even before normalize's own
	// carry handling runs, since normalize's exact-width branch returns
	// immediately without touching the exponent at all (see addsub.go's
	// carryExponent call ahead of its own normalize call).
	expOut, regimeOut := carryExponent(da.exp+db.exp, regimeOut)

	fa, fb := da.frac, db.frac
	p, q := fa.Len(), fb.Len()

	total := bitbuf.Add(fa.ShiftLeft(q), fb.ShiftLeft(p))

	hiddenBits := make([]byte, p+q+1)
	hiddenBits[0] = 1
	total = bitbuf.Add(total, bitbuf.FromBits(hiddenBits...))

	for i := 0; i < q; i++ {
		if fb.At(q-1-i) == 1 {
			total = bitbuf.Add(total, fa.ShiftLeft(i))
		}
	}

	// A product of 2 or more needs p+q+2 bits; widen the target and raise the
	// exponent instead of letting normalize truncate the low bit.
	nominal := p + q + 1
	if total.TrimLeadingZeros().Len() > nominal {
		nominal++
		expOut, regimeOut = carryExponent(expOut+1, regimeOut)
	}
	frac, expOut, regimeOut := normalize(total, nominal, expOut, regimeOut)
	return fromFields(signOut, regimeOut, expOut, frac)
}
