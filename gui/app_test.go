package main

import "testing"

func TestApp_ParsePositBitString(t *testing.T) {
	app := NewApp()
	p, err := app.ParsePosit("010011")
	if err != nil {
		t.Fatalf("ParsePosit failed: %v", err)
	}
	if p.String() != "010011" {
		t.Errorf("expected 010011, got %s", p.String())
	}
}

func TestApp_ParsePositDecimal(t *testing.T) {
	app := NewApp()
	p, err := app.ParsePosit("0.625")
	if err != nil {
		t.Fatalf("ParsePosit failed: %v", err)
	}
	if p.String() != "0011101" {
		t.Errorf("expected 0011101, got %s", p.String())
	}
}

func TestApp_ParsePositInvalid(t *testing.T) {
	app := NewApp()
	if _, err := app.ParsePosit("not-a-posit"); err == nil {
		t.Error("expected an error for invalid input")
	}
}

func TestApp_ComputeAdd(t *testing.T) {
	app := NewApp()
	bits, decoded, err := app.Compute("01001", "010001", "+")
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if bits != "0100111" {
		t.Errorf("expected 0100111, got %s", bits)
	}
	if decoded == "" {
		t.Error("expected a non-empty decoded summary")
	}
}

func TestApp_ComputeMul(t *testing.T) {
	app := NewApp()
	bits, _, err := app.Compute("010010", "010001", "×")
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if bits != "010011" {
		t.Errorf("expected 010011, got %s", bits)
	}
}

func TestApp_ComputeEmptyOperandIsError(t *testing.T) {
	app := NewApp()
	if _, _, err := app.Compute("01001", "", "÷"); err == nil {
		t.Error("expected an error for an empty operand")
	}
}

func TestApp_ComputeUnknownOperator(t *testing.T) {
	app := NewApp()
	if _, _, err := app.Compute("01001", "01001", "?"); err == nil {
		t.Error("expected an error for an unknown operator")
	}
}
