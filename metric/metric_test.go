package metric

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func Test_CalcCost(t *testing.T) {
	type TestCase struct {
		Name                   string
		Cost                   Cost
		CosTheta, AbsDst, MaxD float64
		Want                   float64
	}

	testCases := []TestCase{
		{Name: "inner aligned", Cost: InnerProductCost{Param: 1.1}, CosTheta: 1, AbsDst: 2, MaxD: 4, Want: 0.5},
		{Name: "inner opposite", Cost: InnerProductCost{Param: 1.1}, CosTheta: -1, AbsDst: 2, MaxD: 4, Want: 2.7},
		{Name: "angle orthogonal", Cost: AngleCost{Param: 2}, CosTheta: 0, AbsDst: 1, MaxD: 4, Want: math.Pi/2 + 0.5},
		{Name: "angle aligned", Cost: AngleCost{Param: 2}, CosTheta: 1, AbsDst: 4, MaxD: 4, Want: 2},
		{Name: "zero max distance", Cost: InnerProductCost{Param: 1}, CosTheta: 1, AbsDst: 0, MaxD: 0, Want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.InDelta(t, tc.Want, tc.Cost.CalcCost(tc.CosTheta, tc.AbsDst, tc.MaxD), 1e-12)
		})
	}
}

func Test_EvaluateDirection(t *testing.T) {
	c := InnerProductCost{Param: 1}
	src := r3.Vec{X: 2}
	center := r3.Vec{}

	toward := Evaluate(c, src, r3.Vec{X: 1}, center, 2)
	away := Evaluate(c, src, r3.Vec{X: 3}, center, 2)
	assert.InDelta(t, 0.5, toward, 1e-12)
	assert.InDelta(t, 2.5, away, 1e-12)
}

func Test_EvaluateCoincidentPoints(t *testing.T) {
	c := AngleCost{Param: 1}
	p := r3.Vec{X: 1, Y: 1}
	assert.Equal(t, 0.0, Evaluate(c, p, p, r3.Vec{}, 3))
	assert.InDelta(t, 1.0/3.0, Evaluate(c, p, r3.Vec{X: 1, Y: 2}, p, 3), 1e-12)
}

func Test_ParseMode(t *testing.T) {
	m, err := ParseMode("angle")
	assert.NoError(t, err)
	assert.Equal(t, Angle, m)
	assert.Equal(t, "angle", m.String())

	m, err = ParseMode("inner-product")
	assert.NoError(t, err)
	assert.Equal(t, InnerProduct, m)
	assert.IsType(t, InnerProductCost{}, NewCost(m, 1))
	assert.IsType(t, AngleCost{}, NewCost(Angle, 1))

	_, err = ParseMode("cosine")
	assert.True(t, errors.Is(err, ErrUnknownMode))
}
