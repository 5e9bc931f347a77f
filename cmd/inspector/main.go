// Command inspector is a terminal UI for exploring posit encodings: type a
// bit string or a decimal literal, see its decoded sign/regime/exponent/
// fraction and scaled value, then combine it with a second operand through
// +, -, *, or / and inspect the result the same way.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/vilunov/goposit/posit"
	"github.com/vilunov/goposit/regime"
)

// inspector mirrors the teacher's debugger TUI shape (panels + a bottom
// command/input strip + global key bindings) generalized from stepping an
// ARM program to decoding posit values.
type inspector struct {
	app    *tview.Application
	layout *tview.Flex

	operandAInput *tview.InputField
	operandBInput *tview.InputField
	operatorList  *tview.DropDown

	decodedAView *tview.TextView
	decodedBView *tview.TextView
	resultView   *tview.TextView
	statusView   *tview.TextView

	operandA posit.Posit
	operandB posit.Posit
	haveA    bool
	haveB    bool
	operator string
}

var operators = []string{"+", "-", "*", "/"}

func newInspector() *inspector {
	ins := &inspector{
		app:      tview.NewApplication(),
		operator: "+",
	}
	ins.initializeViews()
	ins.buildLayout()
	ins.setupKeyBindings()
	return ins
}

func (ins *inspector) initializeViews() {
	ins.operandAInput = tview.NewInputField().
		SetLabel("A: ").
		SetFieldWidth(0).
		SetDoneFunc(ins.handleOperandA)
	ins.operandAInput.SetBorder(true).SetTitle(" Operand A (bits or decimal) ")

	ins.operandBInput = tview.NewInputField().
		SetLabel("B: ").
		SetFieldWidth(0).
		SetDoneFunc(ins.handleOperandB)
	ins.operandBInput.SetBorder(true).SetTitle(" Operand B (bits or decimal) ")

	ins.operatorList = tview.NewDropDown().
		SetLabel("op: ").
		SetOptions(operators, ins.handleOperator)
	ins.operatorList.SetCurrentOption(0)
	ins.operatorList.SetBorder(true).SetTitle(" Operator ")

	ins.decodedAView = tview.NewTextView().SetDynamicColors(true)
	ins.decodedAView.SetBorder(true).SetTitle(" A decoded ")

	ins.decodedBView = tview.NewTextView().SetDynamicColors(true)
	ins.decodedBView.SetBorder(true).SetTitle(" B decoded ")

	ins.resultView = tview.NewTextView().SetDynamicColors(true)
	ins.resultView.SetBorder(true).SetTitle(" Result ")

	ins.statusView = tview.NewTextView().SetDynamicColors(true)
	ins.statusView.SetBorder(true).SetTitle(" Status ")
	ins.statusView.SetText("[yellow]Enter a bit string (e.g. 010011) or a decimal (e.g. 0.625) and press Enter[white]")
}

func (ins *inspector) buildLayout() {
	inputRow := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(ins.operandAInput, 0, 2, true).
		AddItem(ins.operandBInput, 0, 2, false).
		AddItem(ins.operatorList, 0, 1, false)

	decodedRow := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(ins.decodedAView, 0, 1, false).
		AddItem(ins.decodedBView, 0, 1, false).
		AddItem(ins.resultView, 0, 1, false)

	ins.layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(inputRow, 5, 0, true).
		AddItem(decodedRow, 0, 3, false).
		AddItem(ins.statusView, 3, 0, false)
}

func (ins *inspector) setupKeyBindings() {
	ins.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			ins.app.Stop()
			return nil
		case tcell.KeyTab:
			ins.cycleFocus()
			return nil
		}
		return event
	})
}

func (ins *inspector) cycleFocus() {
	switch ins.app.GetFocus() {
	case ins.operandAInput:
		ins.app.SetFocus(ins.operandBInput)
	case ins.operandBInput:
		ins.app.SetFocus(ins.operatorList)
	default:
		ins.app.SetFocus(ins.operandAInput)
	}
}

func (ins *inspector) handleOperandA(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	p, ok := parsePosit(ins.operandAInput.GetText())
	if !ok {
		ins.setStatus(fmt.Sprintf("could not parse %q as bits or decimal", ins.operandAInput.GetText()))
		ins.haveA = false
		return
	}
	ins.operandA, ins.haveA = p, true
	ins.decodedAView.SetText(renderFields(decodeFields(p)))
	ins.recompute()
}

func (ins *inspector) handleOperandB(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	p, ok := parsePosit(ins.operandBInput.GetText())
	if !ok {
		ins.setStatus(fmt.Sprintf("could not parse %q as bits or decimal", ins.operandBInput.GetText()))
		ins.haveB = false
		return
	}
	ins.operandB, ins.haveB = p, true
	ins.decodedBView.SetText(renderFields(decodeFields(p)))
	ins.recompute()
}

func (ins *inspector) handleOperator(text string, index int) {
	ins.operator = text
	ins.recompute()
}

func (ins *inspector) recompute() {
	if !ins.haveA || !ins.haveB {
		return
	}

	var result posit.Posit
	switch ins.operator {
	case "+":
		result = posit.Add(ins.operandA, ins.operandB)
	case "-":
		result = posit.Sub(ins.operandA, ins.operandB)
	case "*":
		result = posit.Mul(ins.operandA, ins.operandB)
	case "/":
		result = posit.Div(ins.operandA, ins.operandB)
	default:
		ins.setStatus(fmt.Sprintf("unknown operator %q", ins.operator))
		return
	}

	ins.resultView.SetText(renderFields(decodeFields(result)))
	ins.setStatus(fmt.Sprintf("A %s B = %s", ins.operator, result.String()))
}

func (ins *inspector) setStatus(msg string) {
	ins.statusView.SetText(msg)
}

func renderFields(f fields) string {
	var b strings.Builder
	switch {
	case f.NaR:
		b.WriteString("NaR (not a real)\n")
	case f.Zero:
		b.WriteString("Zero\n")
	default:
		fmt.Fprintf(&b, "sign:   %v\n", f.Sign)
		fmt.Fprintf(&b, "regime: %s, run=%d\n", regimeSign(f.RegimeNegative), f.RegimeRun)
		fmt.Fprintf(&b, "exp:    %d\n", f.Exp)
		fmt.Fprintf(&b, "frac:   %s\n", fracString(f.Frac))
	}
	fmt.Fprintf(&b, "value:  %v\n", f.Value)
	return b.String()
}

func regimeSign(negative bool) string {
	if negative {
		return "negative"
	}
	return "positive"
}

func fracString(frac []byte) string {
	if len(frac) == 0 {
		return "(none)"
	}
	var b strings.Builder
	for _, bit := range frac {
		if bit == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func main() {
	regime.OnSaturate = func(a, b, capped int64) {
		log.Printf("[debug] regime magnitude saturated: %d + %d capped at %d", a, b, capped)
	}

	ins := newInspector()
	ins.app.SetRoot(ins.layout, true).SetFocus(ins.operandAInput)
	if err := ins.app.Run(); err != nil {
		panic(err)
	}
}
