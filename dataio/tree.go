package dataio

import (
	"github.com/ar90n/treerecon"
	"github.com/ar90n/treerecon/graph"
	"gonum.org/v1/gonum/spatial/r3"
)

// Tree is a point set loaded from records together with the links the
// records declare.
type Tree struct {
	PointSet  *treerecon.PointSet
	Reference []treerecon.Edge
}

// NewTree converts records into a point set. Label 0 gets index 0 and the
// other labels follow in order of first appearance; a repeated label keeps
// the values of its last record. Radii are diameters scaled by coefRadius.
// Links to labels without a record and self links are dropped.
func NewTree(records []Record, coefRadius float64, options ...treerecon.Option) (*Tree, error) {
	labelToIndex := map[int]int{}
	hasRoot := false
	for _, rec := range records {
		if rec.Label == 0 {
			hasRoot = true
		}
	}
	if !hasRoot {
		return nil, treerecon.ErrMissingRootLabel
	}

	labelToIndex[0] = treerecon.CenterIndex
	for _, rec := range records {
		if _, ok := labelToIndex[rec.Label]; !ok {
			labelToIndex[rec.Label] = len(labelToIndex)
		}
	}

	n := len(labelToIndex)
	positions := make([]r3.Vec, n)
	radii := make([]float64, n)
	labels := make([]int, n)
	for _, rec := range records {
		i := labelToIndex[rec.Label]
		positions[i] = r3.Vec{X: rec.X, Y: rec.Y, Z: rec.Z}
		radii[i] = rec.Diameter * coefRadius
		labels[i] = rec.Label
	}

	reference := make([]treerecon.Edge, 0, len(records))
	for _, rec := range records {
		i := labelToIndex[rec.Label]
		j, ok := labelToIndex[rec.ParentLabel]
		if !ok || i == j {
			continue
		}
		reference = append(reference, treerecon.NewEdge(i, j))
	}

	ps, err := treerecon.NewPointSet(positions, radii, labels, labelToIndex, options...)
	if err != nil {
		return nil, err
	}

	return &Tree{PointSet: ps, Reference: reference}, nil
}

// Parents orients edges away from the center and returns the parent index of
// every node. The center and nodes no edge reaches are their own parents.
func Parents(n int, edges []treerecon.Edge) ([]int, error) {
	g, err := graph.FromUndirectedEdges(uint(n), edges)
	if err != nil {
		return nil, err
	}

	tree := g.BFSTree(treerecon.CenterIndex)
	parents := make([]int, n)
	for i := range parents {
		parents[i] = i
		if 0 <= tree.Parent[i] {
			parents[i] = tree.Parent[i]
		}
	}
	return parents, nil
}
