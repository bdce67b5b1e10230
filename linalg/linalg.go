package linalg

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

func SqL2(x, y r3.Vec) float64 {
	return r3.Norm2(r3.Sub(x, y))
}

func L2(x, y r3.Vec) float64 {
	return math.Sqrt(SqL2(x, y))
}

// SqL2XY is the squared distance of the projections onto the xy plane.
func SqL2XY(x, y r3.Vec) float64 {
	dx, dy := x.X-y.X, x.Y-y.Y
	return dx*dx + dy*dy
}

// CosTheta returns the cosine of the angle between a and b clamped to [-1, 1].
// A zero-length operand counts as perfectly aligned and yields 1.
func CosTheta(a, b r3.Vec) float64 {
	na, nb := r3.Norm(a), r3.Norm(b)
	if na == 0.0 || nb == 0.0 {
		return 1.0
	}

	return Clamp(r3.Dot(a, b)/(na*nb), -1.0, 1.0)
}
