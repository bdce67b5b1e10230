package dataio

import (
	"github.com/ar90n/treerecon"
	"gonum.org/v1/gonum/spatial/r3"
)

// PathDistance returns the distance along edges from the nearest of roots.
// Nodes no root reaches get 0.
func PathDistance(positions []r3.Vec, edges []treerecon.Edge, roots []int) []float64 {
	n := len(positions)
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e.Src] = append(adj[e.Src], e.Dst)
		adj[e.Dst] = append(adj[e.Dst], e.Src)
	}

	distance := make([]float64, n)
	seen := make([]bool, n)
	queue := make([]int, 0, n)
	for _, r := range roots {
		if !seen[r] {
			seen[r] = true
			queue = append(queue, r)
		}
	}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, t := range adj[s] {
			if seen[t] {
				continue
			}
			seen[t] = true
			distance[t] = distance[s] + r3.Norm(r3.Sub(positions[s], positions[t]))
			queue = append(queue, t)
		}
	}

	return distance
}
