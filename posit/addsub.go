package posit

import (
	"github.com/vilunov/goposit/bitbuf"
	"github.com/vilunov/goposit/regime"
)

// combinedExponent flattens (regime, exp) into a single integer scale, in
// units of the ES-bit exponent field: useed^k * 2^exp = 2^(k*esSpan+exp).
func combinedExponent(d decoded) int64 {
	k := d.regime.Value
	if d.regime.Negative {
		k = -k
	}
	return k*esSpan + d.exp
}

// alignSignificands brings da and db's "1.fraction" significands to a
// common scale: the finer of the two operands' per-bit weights (spec.md
// §4.9's alignment step). Each significand is extended (never truncated) by
// left-shifting, so no precision is lost; the shorter result is then padded
// with leading zero bits so both buffers share a final width. commonRef is
// the combined-exponent scale the returned buffers are expressed in.
func alignSignificands(da, db decoded) (aInt, bInt bitbuf.Buffer, commonRef int64) {
	pA, pB := da.frac.Len(), db.frac.Len()
	refA := combinedExponent(da) - int64(pA)
	refB := combinedExponent(db) - int64(pB)

	commonRef = refA
	if refB < commonRef {
		commonRef = refB
	}
	shiftA := int(refA - commonRef)
	shiftB := int(refB - commonRef)

	aInt = bitbuf.Concat(bitbuf.FromBits(1), da.frac).ShiftLeft(shiftA)
	bInt = bitbuf.Concat(bitbuf.FromBits(1), db.frac).ShiftLeft(shiftB)

	w := aInt.Len()
	if bInt.Len() > w {
		w = bInt.Len()
	}
	aInt = alignRight(aInt, w)
	bInt = alignRight(bInt, w)
	return aInt, bInt, commonRef
}

// alignRight pads b on the left (most-significant end) with zero bits so it
// reaches the requested width, without changing its value.
func alignRight(b bitbuf.Buffer, width int) bitbuf.Buffer {
	if b.Len() >= width {
		return b
	}
	pad := make([]byte, width-b.Len())
	return bitbuf.Concat(bitbuf.FromBits(pad...), b)
}

// Add implements posit addition (spec.md §4.9): zero/NaR short-circuits,
// align the two "1.fraction" significands at a common scale, then combine
// their magnitudes (a straight add for like-signed operands, a subtract of
// the smaller from the larger otherwise) and renormalize through the shared
// state machine.
func Add(a, b Posit) Posit {
	if a.IsNaR() || b.IsNaR() {
		return NaR()
	}
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}

	da, db := decode(a), decode(b)
	aInt, bInt, commonRef := alignSignificands(da, db)
	w := aInt.Len()

	if da.sign == db.sign {
		// A sum of two w-bit buffers is below 2^(w+1), so it always fits in
		// w+1 bits. When alignment padded one operand with leading zeros the
		// sum can be narrower than that; normalize then shifts it up and
		// lowers the exponent. The seed is the weight of bit w+1's position.
		nominalWidth := w + 1
		exp0, r0 := carryExponent(commonRef+int64(nominalWidth)-1, regime.Zero)
		sum := bitbuf.Add(aInt, bInt)
		frac, exp, r := normalize(sum, nominalWidth, exp0, r0)
		return fromFields(da.sign, r, exp, frac)
	}

	// A difference never exceeds its larger operand's width, so the target
	// width here stays w and the seed uses w's own leading-bit weight.
	exp0, r0 := carryExponent(commonRef+int64(w)-1, regime.Zero)
	switch bitbuf.Compare(aInt, bInt) {
	case 0:
		return Zero()
	case 1:
		diff := bitbuf.Sub(aInt, bInt)
		frac, exp, r := normalize(diff, w, exp0, r0)
		return fromFields(da.sign, r, exp, frac)
	default:
		diff := bitbuf.Sub(bInt, aInt)
		frac, exp, r := normalize(diff, w, exp0, r0)
		return fromFields(db.sign, r, exp, frac)
	}
}

// Sub implements posit subtraction as addition of the negation (spec.md
// §4.9's general rule), with an explicit exact-cancellation special case:
// a - a must yield the canonical Zero, which the shared normalize state
// machine cannot produce on its own (an all-zero significand has no leading
// 1 to renormalize toward).
func Sub(a, b Posit) Posit {
	if a.IsNaR() || b.IsNaR() {
		return NaR()
	}
	if a.String() == b.String() {
		return Zero()
	}
	return Add(a, b.Neg())
}
