package reconstruct

import (
	"context"
	"math"

	"github.com/ar90n/treerecon"
	"github.com/ar90n/treerecon/collection"
	"github.com/ar90n/treerecon/metric"
)

const (
	defaultParam = 1.1
	taperRatio   = 1.3
)

// SekiharaReconstructor attaches nodes farthest-first to the cheapest
// candidate under a direction and distance cost. A node left without any
// admissible candidate gets no edge, so the result may be a forest.
type SekiharaReconstructor struct {
	param float64
	mode  metric.Mode
}

var _ treerecon.Reconstructor = (*SekiharaReconstructor)(nil)

func NewSekiharaReconstructor() *SekiharaReconstructor {
	return &SekiharaReconstructor{
		param: defaultParam,
		mode:  metric.InnerProduct,
	}
}

func (sr *SekiharaReconstructor) SetParam(param float64) *SekiharaReconstructor {
	sr.param = param
	return sr
}

func (sr *SekiharaReconstructor) SetMode(mode metric.Mode) *SekiharaReconstructor {
	sr.mode = mode
	return sr
}

func (sr *SekiharaReconstructor) Reconstruct(ctx context.Context, ps *treerecon.PointSet) ([]treerecon.Edge, error) {
	n := ps.Len()
	maxD := ps.MaxDistance()
	cost := metric.NewCost(sr.mode, sr.param)
	center := ps.CenterVector()

	ds := collection.NewDisjointSet(uint(n))
	edges := make([]treerecon.Edge, 0, n)
	for _, i := range ps.OrderByDistanceFromCenter(true) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		src := ps.Position(i)
		best, bestCost := -1, math.Inf(1)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if !admissible(ps, i, j) {
				continue
			}
			if ds.Same(i, j) {
				continue
			}

			c := metric.Evaluate(cost, src, ps.Position(j), center, maxD)
			if c < bestCost {
				best, bestCost = j, c
			}
		}

		if best != -1 {
			edges = append(edges, treerecon.NewEdge(i, best))
			ds.Union(i, best)
		}
	}

	return edges, nil
}

// admissible applies the taper rule: i may only attach to a candidate whose
// radius is not much smaller than its own, unless the candidate is the center.
func admissible(ps *treerecon.PointSet, i, j int) bool {
	return j == treerecon.CenterIndex || ps.Radius(i) <= taperRatio*ps.Radius(j)
}
