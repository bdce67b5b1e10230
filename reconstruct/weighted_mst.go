package reconstruct

import (
	"context"
	"runtime"

	"github.com/ar90n/treerecon"
	"github.com/ar90n/treerecon/metric"
)

// WeightedMstReconstructor runs Kruskal over directed candidate pairs scored
// by the Sekihara cost and scaled so that thick nodes are linked first.
type WeightedMstReconstructor struct {
	param         float64
	mode          metric.Mode
	maxGoroutines int
}

var _ treerecon.Reconstructor = (*WeightedMstReconstructor)(nil)

func NewWeightedMstReconstructor() *WeightedMstReconstructor {
	return &WeightedMstReconstructor{
		param:         defaultParam,
		mode:          metric.InnerProduct,
		maxGoroutines: runtime.NumCPU(),
	}
}

func (wr *WeightedMstReconstructor) SetParam(param float64) *WeightedMstReconstructor {
	wr.param = param
	return wr
}

func (wr *WeightedMstReconstructor) SetMode(mode metric.Mode) *WeightedMstReconstructor {
	wr.mode = mode
	return wr
}

func (wr *WeightedMstReconstructor) SetMaxGoroutines(maxGoroutines uint) *WeightedMstReconstructor {
	wr.maxGoroutines = int(maxGoroutines)
	return wr
}

func (wr *WeightedMstReconstructor) Reconstruct(ctx context.Context, ps *treerecon.PointSet) ([]treerecon.Edge, error) {
	n := ps.Len()
	maxD := ps.MaxDistance()
	maxR := ps.MaxRadius()
	cost := metric.NewCost(wr.mode, wr.param)
	center := ps.CenterVector()

	candidates, err := collectCandidates(ctx, n, uint(wr.maxGoroutines), func(i int, buf []candidate) []candidate {
		scale := radiusScale(ps.Radius(i), maxR)
		for j := 0; j < n; j++ {
			if i == j || ps.Radius(i) > taperRatio*ps.Radius(j) {
				continue
			}
			c := metric.Evaluate(cost, ps.Position(i), ps.Position(j), center, maxD)
			buf = append(buf, candidate{Weight: scale * c, Src: i, Dst: j})
		}
		return buf
	})
	if err != nil {
		return nil, err
	}

	return kruskal(n, candidates), nil
}

func radiusScale(r, maxR float64) float64 {
	ratio := 0.0
	if maxR != 0.0 {
		ratio = r / maxR
	}
	return (2.0 - ratio) * (2.0 - ratio)
}
