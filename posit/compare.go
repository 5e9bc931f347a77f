package posit

import "github.com/vilunov/goposit/bitbuf"

// compare orders two non-NaR posits, returning -1, 0, or 1. Callers must
// rule out NaR first: NaR participates in no ordering, not even with
// itself (see Eq).
func compare(a, b Posit) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		db := decode(b)
		if db.sign {
			return 1
		}
		return -1
	case b.IsZero():
		da := decode(a)
		if da.sign {
			return -1
		}
		return 1
	}

	da, db := decode(a), decode(b)
	if da.sign != db.sign {
		if da.sign {
			return -1
		}
		return 1
	}

	ceA, ceB := combinedExponent(da), combinedExponent(db)
	var magCmp int
	switch {
	case ceA > ceB:
		magCmp = 1
	case ceA < ceB:
		magCmp = -1
	default:
		// Same combined exponent: compare the "1.fraction" significands
		// directly. They can differ in bit width (fraction length isn't
		// normalized across operands), so the shorter one is extended by
		// left-shifting — the same value-preserving move alignSignificands
		// uses to bring two significands to a common scale — never padded
		// with leading zeros, which would compare against the wrong power
		// of two entirely.
		sigA := bitbuf.Concat(bitbuf.FromBits(1), da.frac)
		sigB := bitbuf.Concat(bitbuf.FromBits(1), db.frac)
		w := sigA.Len()
		if sigB.Len() > w {
			w = sigB.Len()
		}
		magCmp = bitbuf.Compare(sigA.ShiftLeft(w-sigA.Len()), sigB.ShiftLeft(w-sigB.Len()))
	}

	if da.sign {
		return -magCmp
	}
	return magCmp
}

// Eq reports whether a and b denote the same real value. NaR is equal to
// nothing, including another NaR.
func Eq(a, b Posit) bool {
	if a.IsNaR() || b.IsNaR() {
		return false
	}
	return compare(a, b) == 0
}

// Lt reports whether a < b. False whenever either operand is NaR.
func Lt(a, b Posit) bool {
	if a.IsNaR() || b.IsNaR() {
		return false
	}
	return compare(a, b) < 0
}

// Le reports whether a <= b. False whenever either operand is NaR.
func Le(a, b Posit) bool {
	if a.IsNaR() || b.IsNaR() {
		return false
	}
	return compare(a, b) <= 0
}

// Gt reports whether a > b. False whenever either operand is NaR.
func Gt(a, b Posit) bool {
	if a.IsNaR() || b.IsNaR() {
		return false
	}
	return compare(a, b) > 0
}

// Ge reports whether a >= b. False whenever either operand is NaR.
func Ge(a, b Posit) bool {
	if a.IsNaR() || b.IsNaR() {
		return false
	}
	return compare(a, b) >= 0
}
