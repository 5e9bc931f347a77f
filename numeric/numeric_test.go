package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vilunov/goposit/numeric"
)

// TestDotProductEndToEnd mirrors spec.md §8's cancellation check: for any
// a >= 5 and b in {5, 8, 12, 15, 20}, the six-element dot product of v1 and
// v2 must land within 1e-7 of 8779.
func TestDotProductEndToEnd(t *testing.T) {
	for _, tc := range []struct {
		a, b float64
	}{
		{5, 5},
		{5, 8},
		{6, 12},
		{7, 15},
		{8, 20},
	} {
		a, b := tc.a, tc.b
		v1 := []float64{
			math.Pow(10, a),
			1223,
			math.Pow(10, a-1),
			math.Pow(10, a-2),
			3,
			-math.Pow(10, a-5),
		}
		v2 := []float64{
			math.Pow(10, b),
			2,
			-math.Pow(10, b+1),
			math.Pow(10, b),
			2111,
			math.Pow(10, b+3),
		}

		got := numeric.DotProductValue(v1, v2)
		assert.InDeltaf(t, 8779.0, got, 1e-7, "a=%v b=%v", a, b)
	}
}

func TestDotProductEmptyVectorsIsZero(t *testing.T) {
	assert.Equal(t, 0.0, numeric.DotProductValue(nil, nil))
}

func TestDotProductMismatchedLengthsUsesShorter(t *testing.T) {
	v1 := []float64{1, 2, 3}
	v2 := []float64{1, 2}
	got := numeric.DotProductValue(v1, v2)
	assert.InDelta(t, 5.0, got, 1e-9)
}

// TestMinimizeGoldenSectionEndToEnd mirrors spec.md §8's minimizer check: a
// parabola centered at 4/3 on [-2, 4.65], probed in steps of 0.5, must
// converge to within 1e-7 of 4/3.
func TestMinimizeGoldenSectionEndToEnd(t *testing.T) {
	const center = 4.0 / 3.0
	f := numeric.Parabola(center)

	got := numeric.Minimize(f, -2, 4.65, 0.5, 1e-9, 200)
	assert.InDelta(t, center, got, 1e-7)
}

func TestMinimizeConvergesFromOffCenterBracket(t *testing.T) {
	f := numeric.Parabola(2.5)
	got := numeric.Minimize(f, 0, 10, 0.25, 1e-9, 200)
	assert.InDelta(t, 2.5, got, 1e-7)
}

func TestParabolaShape(t *testing.T) {
	f := numeric.Parabola(3)
	assert.Equal(t, 0.0, f(3))
	assert.Equal(t, 4.0, f(1))
	assert.Equal(t, 4.0, f(5))
}
