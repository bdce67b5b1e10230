package treerecon

// Edge links two node indices. Reconstructors emit Src as the node being
// attached and Dst as the node it attaches to; consumers treat it as unordered.
type Edge struct {
	Src int
	Dst int
}

func NewEdge(src, dst int) Edge {
	return Edge{Src: src, Dst: dst}
}

// Key returns the edge with the smaller index first.
func (e Edge) Key() Edge {
	if e.Dst < e.Src {
		return Edge{Src: e.Dst, Dst: e.Src}
	}
	return e
}

func (e Edge) IsLoop() bool {
	return e.Src == e.Dst
}

func (e Edge) Touches(i int) bool {
	return e.Src == i || e.Dst == i
}

// EdgeSet returns the distinct unordered non-loop pairs of edges.
func EdgeSet(edges []Edge) map[Edge]struct{} {
	set := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		if e.IsLoop() {
			continue
		}
		set[e.Key()] = struct{}{}
	}
	return set
}

// UniqueEdges returns the distinct unordered non-loop pairs of edges in first
// occurrence order, keeping the orientation of the first occurrence.
func UniqueEdges(edges []Edge) []Edge {
	founds := make(map[Edge]struct{}, len(edges))
	ret := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.IsLoop() {
			continue
		}
		if _, ok := founds[e.Key()]; ok {
			continue
		}
		founds[e.Key()] = struct{}{}
		ret = append(ret, e)
	}
	return ret
}

func TotalLength(ps *PointSet, edges []Edge) float64 {
	sum := 0.0
	for _, e := range edges {
		sum += ps.Distance(e.Src, e.Dst)
	}
	return sum
}
