package treerecon

import (
	"math"
	"runtime"
	"sort"

	"github.com/ar90n/treerecon/common"
	"github.com/ar90n/treerecon/linalg"
	"github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"
	"gonum.org/v1/gonum/spatial/r3"
)

const CenterIndex = 0

// PointSet holds the node samples of one tree. Index 0 is the center every
// distance-from-center ordering is anchored at.
type PointSet struct {
	positions     []r3.Vec
	radii         []float64
	labels        []int
	labelToIndex  map[int]int
	maxGoroutines int
}

type Option func(*PointSet)

func WithMaxGoroutines(maxGoroutines uint) Option {
	return func(ps *PointSet) {
		ps.maxGoroutines = int(maxGoroutines)
	}
}

func NewPointSet(positions []r3.Vec, radii []float64, labels []int, labelToIndex map[int]int, options ...Option) (*PointSet, error) {
	n := len(positions)
	if len(radii) != n || len(labels) != n {
		return nil, errors.Wrapf(ErrShapeMismatch, "len(positions)=%d, len(radii)=%d, len(labels)=%d", n, len(radii), len(labels))
	}

	root, ok := labelToIndex[0]
	if !ok {
		return nil, ErrMissingRootLabel
	}
	if root != CenterIndex {
		return nil, errors.Wrapf(ErrMissingRootLabel, "label 0 maps to index %d", root)
	}

	if len(labelToIndex) != n {
		return nil, errors.Wrapf(ErrShapeMismatch, "len(label_to_index)=%d, len(labels)=%d", len(labelToIndex), n)
	}
	for label, index := range labelToIndex {
		if index < 0 || n <= index || labels[index] != label {
			return nil, errors.Wrapf(ErrInvalidLabelMapping, "label %d maps to index %d", label, index)
		}
	}

	for i, r := range radii {
		if r < 0 || math.IsNaN(r) {
			return nil, errors.Wrapf(ErrInvalidRadius, "radius[%d]=%v", i, r)
		}
	}

	ps := &PointSet{
		positions:     append([]r3.Vec(nil), positions...),
		radii:         append([]float64(nil), radii...),
		labels:        append([]int(nil), labels...),
		labelToIndex:  make(map[int]int, n),
		maxGoroutines: runtime.NumCPU(),
	}
	for label, index := range labelToIndex {
		ps.labelToIndex[label] = index
	}
	for _, option := range options {
		option(ps)
	}

	return ps, nil
}

func (ps *PointSet) Len() int {
	return len(ps.positions)
}

func (ps *PointSet) Position(i int) r3.Vec {
	return ps.positions[i]
}

func (ps *PointSet) Radius(i int) float64 {
	return ps.radii[i]
}

func (ps *PointSet) Label(i int) int {
	return ps.labels[i]
}

func (ps *PointSet) IndexOf(label int) (int, bool) {
	i, ok := ps.labelToIndex[label]
	return i, ok
}

func (ps *PointSet) Radii() []float64 {
	return append([]float64(nil), ps.radii...)
}

func (ps *PointSet) Positions() []r3.Vec {
	return append([]r3.Vec(nil), ps.positions...)
}

func (ps *PointSet) MaxGoroutines() uint {
	return uint(ps.maxGoroutines)
}

func (ps *PointSet) CenterVector() r3.Vec {
	return ps.positions[CenterIndex]
}

func (ps *PointSet) Distance(i, j int) float64 {
	return linalg.L2(ps.positions[i], ps.positions[j])
}

func (ps *PointSet) MaxRadius() float64 {
	ret := 0.0
	for _, r := range ps.radii {
		ret = linalg.Max(ret, r)
	}
	return ret
}

// MaxDistance returns the largest pairwise distance. Rows are split across
// goroutines and reduced afterwards.
func (ps *PointSet) MaxDistance() float64 {
	chunks := common.GetChunks(uint(ps.Len()), uint(ps.maxGoroutines))
	maxes := make([]float64, len(chunks))

	p := pool.New().WithMaxGoroutines(linalg.Max(1, len(chunks)))
	for ci, c := range chunks {
		ci, c := ci, c
		p.Go(func() {
			local := 0.0
			for i := int(c.Begin); i < int(c.End); i++ {
				for j := i + 1; j < ps.Len(); j++ {
					local = linalg.Max(local, ps.Distance(i, j))
				}
			}
			maxes[ci] = local
		})
	}
	p.Wait()

	ret := 0.0
	for _, m := range maxes {
		ret = linalg.Max(ret, m)
	}
	return ret
}

// OrderByDistanceFromCenter returns every index except the center sorted by
// squared distance to it. Equal distances keep ascending index order.
func (ps *PointSet) OrderByDistanceFromCenter(descending bool) []int {
	return ps.orderBy(descending, func(p r3.Vec) float64 {
		return linalg.SqL2(p, ps.CenterVector())
	})
}

// OrderByPlanarDistanceFromCenter is OrderByDistanceFromCenter measured in
// the xy plane.
func (ps *PointSet) OrderByPlanarDistanceFromCenter(descending bool) []int {
	return ps.orderBy(descending, func(p r3.Vec) float64 {
		return linalg.SqL2XY(p, ps.CenterVector())
	})
}

func (ps *PointSet) orderBy(descending bool, key func(r3.Vec) float64) []int {
	order := make([]int, 0, ps.Len()-1)
	keys := make([]float64, ps.Len())
	for i := 1; i < ps.Len(); i++ {
		order = append(order, i)
		keys[i] = key(ps.positions[i])
	}

	sort.SliceStable(order, func(a, b int) bool {
		if descending {
			return keys[order[a]] > keys[order[b]]
		}
		return keys[order[a]] < keys[order[b]]
	})
	return order
}
