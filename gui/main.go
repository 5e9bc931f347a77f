package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// calcGUI is the desktop posit calculator: two operand entries, four
// operator buttons, a result label showing the result's bit string, and a
// status label with a short summary (NaR, Zero, or its bit count). Grounded
// in the teacher's debugger GUI (App/Window/view-field shape, initializeViews
// + buildLayout split), generalized here from an ARM debugger's panels to a
// single-screen calculator.
type calcGUI struct {
	app    *App
	fyne   fyne.App
	window fyne.Window

	operandA    *widget.Entry
	operandB    *widget.Entry
	resultLabel *widget.Label
	statusLabel *widget.Label
}

func newCalcGUI() *calcGUI {
	g := &calcGUI{
		app:  NewApp(),
		fyne: app.New(),
	}
	g.window = g.fyne.NewWindow("Posit Calculator")
	g.initializeViews()
	g.buildLayout()
	g.window.Resize(fyne.NewSize(480, 240))
	return g
}

func (g *calcGUI) initializeViews() {
	g.operandA = widget.NewEntry()
	g.operandA.SetPlaceHolder("A: bits (010011) or decimal (0.625)")

	g.operandB = widget.NewEntry()
	g.operandB.SetPlaceHolder("B: bits (010011) or decimal (0.625)")

	g.resultLabel = widget.NewLabel("")
	g.resultLabel.Wrapping = fyne.TextWrapWord

	g.statusLabel = widget.NewLabel("Enter two operands, then pick an operator")
}

func (g *calcGUI) buildLayout() {
	operators := container.NewGridWithColumns(4,
		widget.NewButton("+", func() { g.compute("+") }),
		widget.NewButton("-", func() { g.compute("-") }),
		widget.NewButton("×", func() { g.compute("×") }),
		widget.NewButton("÷", func() { g.compute("÷") }),
	)

	content := container.NewVBox(
		g.operandA,
		g.operandB,
		operators,
		widget.NewSeparator(),
		g.resultLabel,
		g.statusLabel,
	)

	g.window.SetContent(content)
}

func (g *calcGUI) compute(op string) {
	bits, decoded, err := g.app.Compute(g.operandA.Text, g.operandB.Text, op)
	if err != nil {
		g.statusLabel.SetText(fmt.Sprintf("error: %v", err))
		g.resultLabel.SetText("")
		return
	}
	g.resultLabel.SetText(bits)
	g.statusLabel.SetText(decoded)
}

func main() {
	g := newCalcGUI()
	g.window.ShowAndRun()
}
