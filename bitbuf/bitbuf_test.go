package bitbuf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vilunov/goposit/bitbuf"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []byte
		expected string
	}{
		{"both empty", nil, nil, "0"},
		{"no carry", []byte{1, 0}, []byte{0, 1}, "011"},
		{"carry out", []byte{1, 1}, []byte{1, 1}, "110"},
		{"mismatched widths", []byte{1}, []byte{0, 1, 1}, "0100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bitbuf.Add(bitbuf.FromBits(tt.a...), bitbuf.FromBits(tt.b...))
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestSubRequiresNonNegativeResult(t *testing.T) {
	a := bitbuf.FromBits(1, 0)
	b := bitbuf.FromBits(1, 1)
	assert.Panics(t, func() { bitbuf.Sub(a, b) })
}

func TestSub(t *testing.T) {
	a := bitbuf.FromBits(1, 1, 0)
	b := bitbuf.FromBits(0, 1, 1)
	got := bitbuf.Sub(a, b)
	assert.Equal(t, "011", got.String())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []byte
		expected int
	}{
		{"equal same width", []byte{1, 0}, []byte{1, 0}, 0},
		{"equal, padded", []byte{0, 1}, []byte{1}, 0},
		{"less", []byte{0, 1}, []byte{1, 0}, -1},
		{"greater", []byte{1, 0}, []byte{0, 1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bitbuf.Compare(bitbuf.FromBits(tt.a...), bitbuf.FromBits(tt.b...))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestShiftLeftAndRight(t *testing.T) {
	b := bitbuf.FromBits(1, 0, 1)
	assert.Equal(t, "10100", b.ShiftLeft(2).String())
	assert.Equal(t, "1", b.ShiftRight(2).String())
	assert.Equal(t, "", b.ShiftRight(5).String())
}

func TestTrimLeadingZeros(t *testing.T) {
	b := bitbuf.FromBits(0, 0, 1, 0, 1)
	assert.Equal(t, "101", b.TrimLeadingZeros().String())

	allZero := bitbuf.FromBits(0, 0, 0)
	assert.Equal(t, "", allZero.TrimLeadingZeros().String())
}

func TestPushPop(t *testing.T) {
	b := bitbuf.New()
	b = b.Push(1).Push(0).Push(1)
	require.Equal(t, "101", b.String())

	rest, last := b.Pop()
	assert.Equal(t, byte(1), last)
	assert.Equal(t, "10", rest.String())
}

func TestSliceClamps(t *testing.T) {
	b := bitbuf.FromBits(1, 0, 1, 1)
	assert.Equal(t, "11", b.Slice(2, 4).String())
	assert.Equal(t, "", b.Slice(10, 20).String())
	assert.Equal(t, "1011", b.Slice(-5, 50).String())
}

func TestConcat(t *testing.T) {
	got := bitbuf.Concat(bitbuf.FromBits(1, 0), bitbuf.FromBits(), bitbuf.FromBits(1, 1))
	assert.Equal(t, "1011", got.String())
}
