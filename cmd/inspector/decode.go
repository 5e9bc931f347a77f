package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/vilunov/goposit/posit"
)

// fields is the inspector's own view of a posit's decoded parts. The core
// posit package keeps sign/regime/exponent/fraction unexported (spec.md §1
// lists conversion-back-to-double as a non-goal, and decoding for display is
// the same kind of external concern), so this mirrors the bit-layout parsing
// numeric.toFloat does, independently, using only Bits/IsZero/IsNaR/ES.
type fields struct {
	Zero           bool
	NaR            bool
	Sign           bool
	RegimeNegative bool
	RegimeRun      int
	Exp            int64
	Frac           []byte
	Value          float64
}

func decodeFields(p posit.Posit) fields {
	if p.IsNaR() {
		return fields{NaR: true, Value: math.NaN()}
	}
	if p.IsZero() {
		return fields{Zero: true, Value: 0}
	}

	bits := p.Bits()
	sign := bits[0] == 1
	runBit := bits[1]
	negative := runBit == 0

	run := 0
	i := 1
	for i < len(bits) && bits[i] == runBit {
		run++
		i++
	}
	if i < len(bits) {
		i++ // consume terminator bit
	}

	var exp int64
	for j := 0; j < posit.ES; j++ {
		exp <<= 1
		if i < len(bits) {
			exp |= int64(bits[i])
			i++
		}
	}

	var frac []byte
	if i < len(bits) {
		frac = bits[i:]
	}

	regimeValue := int64(run)
	if !negative {
		regimeValue--
	}
	k := regimeValue
	if negative {
		k = -k
	}

	fracValue := 0.0
	scale := 0.5
	for _, b := range frac {
		if b == 1 {
			fracValue += scale
		}
		scale /= 2
	}

	combinedExp := k*(1<<posit.ES) + exp
	value := math.Ldexp(1+fracValue, int(combinedExp))
	if sign {
		value = -value
	}

	return fields{
		Sign:           sign,
		RegimeNegative: negative,
		RegimeRun:      run,
		Exp:            exp,
		Frac:           frac,
		Value:          value,
	}
}

// parsePosit accepts either a bit string (any mix of '0'/'1') or a decimal
// literal, the latter routed through posit.FromDouble, mirroring the
// inspector's single combined input field (spec.md §6.5).
func parsePosit(input string) (posit.Posit, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return posit.Posit{}, false
	}

	if isBitString(input) {
		bits := make([]byte, len(input))
		for idx, c := range input {
			if c == '1' {
				bits[idx] = 1
			}
		}
		return posit.FromBits(bits...), true
	}

	value, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return posit.Posit{}, false
	}
	return posit.FromDouble(value), true
}

func isBitString(s string) bool {
	for _, c := range s {
		if c != '0' && c != '1' {
			return false
		}
	}
	return true
}
