package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vilunov/goposit/posit"
)

// App holds the calculator's pure computation logic, kept separate from the
// Fyne widgets (main.go) the way the teacher's debugger GUI separates its
// App/GUI state from view construction, so the arithmetic can be tested
// without a display.
type App struct{}

// NewApp creates a new calculator App.
func NewApp() *App {
	return &App{}
}

// ParsePosit accepts either a bit string (only '0'/'1' characters) or a
// decimal literal run through posit.FromDouble, mirroring the inspector's
// combined-field convention (SPEC_FULL.md §6.5) for the calculator's two
// operand entries.
func (a *App) ParsePosit(input string) (posit.Posit, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return posit.Posit{}, fmt.Errorf("empty input")
	}

	if isBitString(input) {
		bits := make([]byte, len(input))
		for i, c := range input {
			if c == '1' {
				bits[i] = 1
			}
		}
		return posit.FromBits(bits...), nil
	}

	value, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return posit.Posit{}, fmt.Errorf("%q is neither a bit string nor a decimal: %w", input, err)
	}
	return posit.FromDouble(value), nil
}

func isBitString(s string) bool {
	for _, c := range s {
		if c != '0' && c != '1' {
			return false
		}
	}
	return true
}

// Compute applies op to a and b, returning the result posit's bit string and
// a short decoded summary for display.
func (a *App) Compute(aInput, bInput, op string) (resultBits string, decoded string, err error) {
	left, err := a.ParsePosit(aInput)
	if err != nil {
		return "", "", fmt.Errorf("operand A: %w", err)
	}
	right, err := a.ParsePosit(bInput)
	if err != nil {
		return "", "", fmt.Errorf("operand B: %w", err)
	}

	var result posit.Posit
	switch op {
	case "+":
		result = posit.Add(left, right)
	case "-":
		result = posit.Sub(left, right)
	case "×":
		result = posit.Mul(left, right)
	case "÷":
		result = posit.Div(left, right)
	default:
		return "", "", fmt.Errorf("unknown operator %q", op)
	}

	return result.String(), describe(result), nil
}

func describe(p posit.Posit) string {
	switch {
	case p.IsNaR():
		return "NaR"
	case p.IsZero():
		return "Zero"
	default:
		return fmt.Sprintf("%d bits", len(p.Bits()))
	}
}
