package graph

import (
	"testing"

	"github.com/ar90n/treerecon"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ConvertToUndirected(t *testing.T) {
	g := Graph{
		Nodes: []Node{
			{Neighbors: []uint{1, 2, 3}},
			{Neighbors: []uint{0, 2}},
			{Neighbors: []uint{0, 1, 3}},
			{Neighbors: []uint{0, 4}},
			{Neighbors: []uint{2, 5, 6}},
			{Neighbors: []uint{}},
			{Neighbors: []uint{3, 4, 5}},
		},
	}

	g = ConvertToUndirected(g)

	for i := range g.Nodes {
		for _, j := range g.Nodes[i].Neighbors {
			found := false
			for _, k := range g.Nodes[j].Neighbors {
				if k == uint(i) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("node %d is not neighbor of node %d", i, j)
			}
		}
	}
	assert.Equal(t, []uint{2, 3, 5, 6}, g.Nodes[4].Neighbors)
}

func Test_FromEdges(t *testing.T) {
	g, err := FromEdges(4, []treerecon.Edge{{Src: 1, Dst: 0}, {Src: 1, Dst: 0}, {Src: 2, Dst: 2}, {Src: 3, Dst: 1}, {Src: 0, Dst: 1}})
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, g.Nodes[0].Neighbors)
	assert.Equal(t, []uint{0}, g.Nodes[1].Neighbors)
	assert.Empty(t, g.Nodes[2].Neighbors)
	assert.Equal(t, []uint{1}, g.Nodes[3].Neighbors)

	u, err := FromUndirectedEdges(4, []treerecon.Edge{{Src: 1, Dst: 0}, {Src: 0, Dst: 1}, {Src: 3, Dst: 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, u.Degree(1))
	assert.Equal(t, []uint{0, 3}, u.Nodes[1].Neighbors)

	_, err = FromEdges(2, []treerecon.Edge{{Src: 0, Dst: 2}})
	assert.True(t, errors.Is(err, treerecon.ErrIndexOutOfRange))
}

func Test_BFSTree(t *testing.T) {
	//      0
	//     / \
	//    1   2
	//   / \   \
	//  3   4   5     6 (isolated)
	g, err := FromUndirectedEdges(7, []treerecon.Edge{{Src: 1, Dst: 0}, {Src: 2, Dst: 0}, {Src: 3, Dst: 1}, {Src: 4, Dst: 1}, {Src: 5, Dst: 2}})
	require.NoError(t, err)

	tree := g.BFSTree(0)
	assert.Equal(t, []int{-1, 0, 0, 1, 1, 2, -1}, tree.Parent)
	assert.Equal(t, []uint{0, 1, 2, 3, 4, 5}, tree.Order)
	assert.False(t, tree.Spanning())
	assert.False(t, tree.Reached(6))
	assert.True(t, tree.Reached(0))

	assert.True(t, tree.IsAncestor(0, 4))
	assert.True(t, tree.IsAncestor(1, 3))
	assert.True(t, tree.IsAncestor(3, 3))
	assert.False(t, tree.IsAncestor(2, 3))
	assert.False(t, tree.IsAncestor(4, 1))
	assert.False(t, tree.IsAncestor(0, 6))

	assert.True(t, tree.Related(4, 1))
	assert.True(t, tree.Related(0, 5))
	assert.False(t, tree.Related(3, 4))
	assert.False(t, tree.Related(2, 2))
}

func Test_BFSTreeWithCycle(t *testing.T) {
	g, err := FromUndirectedEdges(4, []treerecon.Edge{{Src: 0, Dst: 1}, {Src: 1, Dst: 2}, {Src: 2, Dst: 3}, {Src: 3, Dst: 0}})
	require.NoError(t, err)

	tree := g.BFSTree(0)
	assert.True(t, tree.Spanning())
	assert.Equal(t, []int{-1, 0, 1, 0}, tree.Parent)
}
