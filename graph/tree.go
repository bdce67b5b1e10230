package graph

// Tree is the breadth-first spanning tree of the component containing Root.
// Neighbors are visited in list order, so a sorted graph gives a
// deterministic tree.
type Tree struct {
	Root     uint
	Parent   []int
	Children [][]uint
	Order    []uint
	in, out  []int
}

func (g Graph) BFSTree(root uint) Tree {
	n := g.Len()
	t := Tree{
		Root:     root,
		Parent:   make([]int, n),
		Children: make([][]uint, n),
		Order:    make([]uint, 0, n),
	}
	for i := range t.Parent {
		t.Parent[i] = -1
	}

	visited := make([]bool, n)
	visited[root] = true
	queue := []uint{root}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		t.Order = append(t.Order, s)

		for _, u := range g.Nodes[s].Neighbors {
			if visited[u] {
				continue
			}
			visited[u] = true
			t.Parent[u] = int(s)
			t.Children[s] = append(t.Children[s], u)
			queue = append(queue, u)
		}
	}

	t.index()
	return t
}

func (t Tree) Len() int {
	return len(t.Parent)
}

func (t Tree) Reached(i uint) bool {
	return i == t.Root || 0 <= t.Parent[i]
}

// Spanning reports whether every node is reachable from the root.
func (t Tree) Spanning() bool {
	return len(t.Order) == t.Len()
}

// IsAncestor reports whether a lies on the root path of b. A node is its own
// ancestor.
func (t Tree) IsAncestor(a, b uint) bool {
	if !t.Reached(a) || !t.Reached(b) {
		return false
	}
	return t.in[a] <= t.in[b] && t.out[b] <= t.out[a]
}

// Related reports whether one of a and b is a strict ancestor of the other.
func (t Tree) Related(a, b uint) bool {
	if a == b {
		return false
	}
	return t.IsAncestor(a, b) || t.IsAncestor(b, a)
}

// index assigns pre/post visit times of an iterative depth-first walk.
func (t *Tree) index() {
	n := t.Len()
	t.in = make([]int, n)
	t.out = make([]int, n)

	type frame struct {
		node uint
		next int
	}

	clock := 0
	stack := []frame{{node: t.Root}}
	t.in[t.Root] = clock
	clock++
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(t.Children[top.node]) {
			child := t.Children[top.node][top.next]
			top.next++
			t.in[child] = clock
			clock++
			stack = append(stack, frame{node: child})
			continue
		}
		t.out[top.node] = clock
		clock++
		stack = stack[:len(stack)-1]
	}
}
