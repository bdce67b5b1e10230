package evaluate

import (
	"github.com/ar90n/treerecon"
	"github.com/ar90n/treerecon/graph"
	"github.com/ar90n/treerecon/linalg"
	"github.com/cockroachdb/errors"
)

// RelationMatrix records, for every pair of non-center nodes ordered by
// descending planar distance from the center, how deep the shallower-ordered
// node sits when the two lie on one root path. Only the strict upper triangle
// is populated.
type RelationMatrix struct {
	Order  []int
	Values [][]int
}

func NewRelationMatrix(ps *treerecon.PointSet, edges []treerecon.Edge) (RelationMatrix, error) {
	g, err := graph.FromUndirectedEdges(uint(ps.Len()), edges)
	if err != nil {
		return RelationMatrix{}, err
	}

	tree := g.BFSTree(treerecon.CenterIndex)
	if !tree.Spanning() {
		return RelationMatrix{}, errors.Wrapf(treerecon.ErrDisconnected, "%d of %d nodes reachable from the center", len(tree.Order), tree.Len())
	}

	depth := BranchDepths(tree)
	maxDepth := 0
	for _, d := range depth {
		maxDepth = linalg.Max(maxDepth, d)
	}

	order := ps.OrderByPlanarDistanceFromCenter(true)
	values := make([][]int, len(order))
	for i, ki := range order {
		values[i] = make([]int, len(order))
		for j := i + 1; j < len(order); j++ {
			if tree.Related(uint(ki), uint(order[j])) {
				values[i][j] = maxDepth - depth[ki] + 1
			}
		}
	}

	return RelationMatrix{Order: order, Values: values}, nil
}

// BranchDepths counts branch points on the way from the root: stepping out of
// the root or out of a node with two or more children adds one.
func BranchDepths(tree graph.Tree) []int {
	depth := make([]int, tree.Len())
	for _, s := range tree.Order {
		step := 0
		if s == tree.Root || 2 <= len(tree.Children[s]) {
			step = 1
		}
		for _, c := range tree.Children[s] {
			depth[c] = depth[s] + step
		}
	}
	return depth
}

// CompareRelationMatrices returns (1 - sum|test-ref| / sum ref) * 100 over the
// upper triangle. The score drops below zero when the error outweighs the
// reference.
func CompareRelationMatrices(test, ref RelationMatrix) (float64, error) {
	if len(test.Values) != len(ref.Values) {
		return 0, errors.Wrapf(treerecon.ErrShapeMismatch, "%d and %d rows", len(test.Values), len(ref.Values))
	}

	sumError, sumRef := 0, 0
	for i := range ref.Values {
		for j := i + 1; j < len(ref.Values[i]); j++ {
			sumError += linalg.Abs(test.Values[i][j] - ref.Values[i][j])
			sumRef += ref.Values[i][j]
		}
	}
	if sumRef == 0 {
		return 0, errors.Wrap(treerecon.ErrEmptyReference, "reference relation matrix is zero")
	}

	return (1.0 - float64(sumError)/float64(sumRef)) * 100.0, nil
}

func CompareTopology(reconstructed, reference []treerecon.Edge, ps *treerecon.PointSet) (float64, error) {
	test, err := NewRelationMatrix(ps, reconstructed)
	if err != nil {
		return 0, errors.Wrap(err, "reconstructed")
	}
	ref, err := NewRelationMatrix(ps, reference)
	if err != nil {
		return 0, errors.Wrap(err, "reference")
	}
	return CompareRelationMatrices(test, ref)
}
