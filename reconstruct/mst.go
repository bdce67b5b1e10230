package reconstruct

import (
	"context"
	"runtime"

	"github.com/ar90n/treerecon"
)

// MstReconstructor builds the Euclidean minimum spanning tree of the point set.
type MstReconstructor struct {
	maxGoroutines int
}

var _ treerecon.Reconstructor = (*MstReconstructor)(nil)

func NewMstReconstructor() *MstReconstructor {
	return &MstReconstructor{
		maxGoroutines: runtime.NumCPU(),
	}
}

func (mr *MstReconstructor) SetMaxGoroutines(maxGoroutines uint) *MstReconstructor {
	mr.maxGoroutines = int(maxGoroutines)
	return mr
}

func (mr *MstReconstructor) Reconstruct(ctx context.Context, ps *treerecon.PointSet) ([]treerecon.Edge, error) {
	n := ps.Len()
	candidates, err := collectCandidates(ctx, n, uint(mr.maxGoroutines), func(i int, buf []candidate) []candidate {
		for j := i + 1; j < n; j++ {
			buf = append(buf, candidate{Weight: ps.Distance(i, j), Src: i, Dst: j})
		}
		return buf
	})
	if err != nil {
		return nil, err
	}

	return kruskal(n, candidates), nil
}
