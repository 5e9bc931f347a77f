package regime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vilunov/goposit/regime"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		r        regime.Regime
		expected string
	}{
		{"zero value, positive", regime.Regime{Negative: false, Value: 0}, "10"},
		{"positive, value 2", regime.Regime{Negative: false, Value: 2}, "1110"},
		{"negative, value 0", regime.Regime{Negative: true, Value: 0}, "1"},
		{"negative, value 3", regime.Regime{Negative: true, Value: 3}, "0001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, regime.Encode(tt.r).String())
			assert.Equal(t, len(tt.expected), regime.BitWidth(tt.r))
		})
	}
}

func TestNeg(t *testing.T) {
	assert.Equal(t, regime.Zero, regime.Neg(regime.Zero))
	assert.Equal(t, regime.Regime{Negative: true, Value: 3}, regime.Neg(regime.Regime{Negative: false, Value: 3}))
	assert.Equal(t, regime.Regime{Negative: false, Value: 3}, regime.Neg(regime.Regime{Negative: true, Value: 3}))
}

func TestAddSameSign(t *testing.T) {
	got := regime.Add(regime.Regime{Negative: false, Value: 2}, regime.Regime{Negative: false, Value: 3})
	assert.Equal(t, regime.Regime{Negative: false, Value: 5}, got)

	got = regime.Add(regime.Regime{Negative: true, Value: 2}, regime.Regime{Negative: true, Value: 3})
	assert.Equal(t, regime.Regime{Negative: true, Value: 5}, got)
}

func TestAddOppositeSign(t *testing.T) {
	got := regime.Add(regime.Regime{Negative: false, Value: 5}, regime.Regime{Negative: true, Value: 2})
	assert.Equal(t, regime.Regime{Negative: false, Value: 3}, got)

	got = regime.Add(regime.Regime{Negative: true, Value: 5}, regime.Regime{Negative: false, Value: 2})
	assert.Equal(t, regime.Regime{Negative: true, Value: 3}, got)

	got = regime.Add(regime.Regime{Negative: false, Value: 4}, regime.Regime{Negative: true, Value: 4})
	assert.Equal(t, regime.Zero, got)
}

func TestAddSaturates(t *testing.T) {
	huge := regime.Regime{Negative: false, Value: 1<<62 - 2}
	got := regime.Add(huge, regime.Regime{Negative: false, Value: 1000})
	assert.Equal(t, int64(1<<62-1), got.Value)
}
