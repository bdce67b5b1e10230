package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func Test_SqL2(t *testing.T) {
	type TestCase struct {
		Name string
		X, Y r3.Vec
		Want float64
	}

	testCases := []TestCase{
		{Name: "same", X: r3.Vec{X: 1, Y: 2, Z: 3}, Y: r3.Vec{X: 1, Y: 2, Z: 3}, Want: 0},
		{Name: "axis", X: r3.Vec{}, Y: r3.Vec{Z: 2}, Want: 4},
		{Name: "diagonal", X: r3.Vec{X: 1, Y: 1, Z: 1}, Y: r3.Vec{X: 2, Y: 3, Z: 4}, Want: 14},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.InDelta(t, tc.Want, SqL2(tc.X, tc.Y), 1e-12)
			assert.InDelta(t, math.Sqrt(tc.Want), L2(tc.X, tc.Y), 1e-12)
		})
	}
}

func Test_SqL2XYIgnoresZ(t *testing.T) {
	assert.Equal(t, 25.0, SqL2XY(r3.Vec{X: 3, Y: 4, Z: 100}, r3.Vec{}))
}

func Test_CosTheta(t *testing.T) {
	type TestCase struct {
		Name string
		A, B r3.Vec
		Want float64
	}

	testCases := []TestCase{
		{Name: "parallel", A: r3.Vec{X: 2}, B: r3.Vec{X: 5}, Want: 1},
		{Name: "opposite", A: r3.Vec{X: 2}, B: r3.Vec{X: -5}, Want: -1},
		{Name: "orthogonal", A: r3.Vec{X: 1}, B: r3.Vec{Y: 1}, Want: 0},
		{Name: "diagonal", A: r3.Vec{X: 1}, B: r3.Vec{X: 1, Y: 1}, Want: math.Sqrt2 / 2},
		{Name: "zero a", A: r3.Vec{}, B: r3.Vec{X: -1}, Want: 1},
		{Name: "zero b", A: r3.Vec{Y: 3}, B: r3.Vec{}, Want: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.InDelta(t, tc.Want, CosTheta(tc.A, tc.B), 1e-12)
		})
	}
}

func Test_CosThetaStaysInRange(t *testing.T) {
	a := r3.Vec{X: 1e-3, Y: 1e-3, Z: 1e-3}
	c := CosTheta(a, r3.Scale(3, a))
	assert.LessOrEqual(t, c, 1.0)
	assert.False(t, math.IsNaN(math.Acos(c)))
}

func Test_Clamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(1.5, -1.0, 1.0))
	assert.Equal(t, -1.0, Clamp(-3.0, -1.0, 1.0))
	assert.Equal(t, 0.25, Clamp(0.25, -1.0, 1.0))
	assert.Equal(t, 3, Max(2, 3))
	assert.Equal(t, 2, Min(2, 3))
	assert.Equal(t, 4, Abs(-4))
}
