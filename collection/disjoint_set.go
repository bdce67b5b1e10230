package collection

import "github.com/cockroachdb/errors"

// DisjointSet keeps a partition of [0, n). parent[x] < 0 marks a root whose
// set size is -parent[x].
type DisjointSet struct {
	parent []int
}

func NewDisjointSet(n uint) *DisjointSet {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	return &DisjointSet{parent: parent}
}

func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// Find returns the root of x and points every node on the way directly at it.
func (ds *DisjointSet) Find(x int) int {
	ds.check(x)

	root := x
	for 0 <= ds.parent[root] {
		root = ds.parent[root]
	}

	for x != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets of x and y. The smaller tree goes under the larger one;
// on ties y's root goes under x's root. It reports whether a merge happened.
func (ds *DisjointSet) Union(x, y int) bool {
	rx, ry := ds.Find(x), ds.Find(y)
	if rx == ry {
		return false
	}

	if -ds.parent[rx] < -ds.parent[ry] {
		rx, ry = ry, rx
	}
	ds.parent[rx] += ds.parent[ry]
	ds.parent[ry] = rx
	return true
}

func (ds *DisjointSet) Same(x, y int) bool {
	return ds.Find(x) == ds.Find(y)
}

func (ds *DisjointSet) Size(x int) int {
	return -ds.parent[ds.Find(x)]
}

// Groups returns the number of disjoint sets.
func (ds *DisjointSet) Groups() int {
	n := 0
	for _, p := range ds.parent {
		if p < 0 {
			n++
		}
	}
	return n
}

func (ds *DisjointSet) check(x int) {
	if x < 0 || len(ds.parent) <= x {
		panic(errors.Wrapf(ErrIndexOutOfRange, "disjoint set: %d not in [0, %d)", x, len(ds.parent)))
	}
}
