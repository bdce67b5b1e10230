package graph

import (
	"sort"

	"github.com/ar90n/treerecon"
	"github.com/cockroachdb/errors"
)

type Graph struct {
	Nodes []Node
}

type Node struct {
	Neighbors []uint
}

// FromEdges builds a directed graph with an arc Src -> Dst per edge. Loops and
// repeated arcs are dropped.
func FromEdges(n uint, edges []treerecon.Edge) (Graph, error) {
	g := Graph{Nodes: make([]Node, n)}
	founds := make(map[treerecon.Edge]struct{}, len(edges))
	for _, e := range edges {
		if e.Src < 0 || int(n) <= e.Src || e.Dst < 0 || int(n) <= e.Dst {
			return Graph{}, errors.Wrapf(treerecon.ErrIndexOutOfRange, "edge (%d, %d) with %d nodes", e.Src, e.Dst, n)
		}
		if e.IsLoop() {
			continue
		}
		if _, ok := founds[e]; ok {
			continue
		}
		founds[e] = struct{}{}
		g.Nodes[e.Src].Neighbors = append(g.Nodes[e.Src].Neighbors, uint(e.Dst))
	}

	return g, nil
}

func FromUndirectedEdges(n uint, edges []treerecon.Edge) (Graph, error) {
	g, err := FromEdges(n, edges)
	if err != nil {
		return Graph{}, err
	}
	return ConvertToUndirected(g), nil
}

// ConvertToUndirected adds the reverse of every arc. Neighbor lists come out
// sorted and without duplicates.
func ConvertToUndirected(g Graph) Graph {
	sets := make([]map[uint]struct{}, len(g.Nodes))
	for i := range sets {
		sets[i] = map[uint]struct{}{}
	}
	for i, node := range g.Nodes {
		for _, j := range node.Neighbors {
			if j == uint(i) {
				continue
			}
			sets[i][j] = struct{}{}
			sets[j][uint(i)] = struct{}{}
		}
	}

	ret := Graph{Nodes: make([]Node, len(g.Nodes))}
	for i, set := range sets {
		neighbors := make([]uint, 0, len(set))
		for j := range set {
			neighbors = append(neighbors, j)
		}
		sort.Slice(neighbors, func(a, b int) bool { return neighbors[a] < neighbors[b] })
		ret.Nodes[i].Neighbors = neighbors
	}
	return ret
}

func (g Graph) Len() int {
	return len(g.Nodes)
}

func (g Graph) Degree(i uint) int {
	return len(g.Nodes[i].Neighbors)
}
