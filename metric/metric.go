package metric

import (
	"math"

	"github.com/ar90n/treerecon/linalg"
	"gonum.org/v1/gonum/spatial/r3"
)

// Cost scores attaching a node to a candidate given the cosine between the
// candidate direction and the center direction, the candidate distance and
// the largest pairwise distance of the point set.
type Cost interface {
	CalcCost(cosTheta, absDst, maxD float64) float64
}

type InnerProductCost struct {
	Param float64
}

func (c InnerProductCost) CalcCost(cosTheta, absDst, maxD float64) float64 {
	return c.Param*(1.0-cosTheta) + normalize(absDst, maxD)
}

type AngleCost struct {
	Param float64
}

func (c AngleCost) CalcCost(cosTheta, absDst, maxD float64) float64 {
	return math.Acos(cosTheta) + c.Param*normalize(absDst, maxD)
}

func NewCost(mode Mode, param float64) Cost {
	if mode == Angle {
		return AngleCost{Param: param}
	}
	return InnerProductCost{Param: param}
}

// Evaluate scores the edge src -> dst against the direction toward center.
func Evaluate(c Cost, src, dst, center r3.Vec, maxD float64) float64 {
	vecDst := r3.Sub(dst, src)
	vecCenter := r3.Sub(center, src)
	return c.CalcCost(linalg.CosTheta(vecDst, vecCenter), r3.Norm(vecDst), maxD)
}

// normalize scales d by maxD. A point set whose points all coincide has
// maxD 0 and contributes no distance term.
func normalize(d, maxD float64) float64 {
	if maxD == 0.0 {
		return 0.0
	}
	return d / maxD
}
