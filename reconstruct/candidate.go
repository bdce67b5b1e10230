package reconstruct

import (
	"context"

	"github.com/ar90n/treerecon"
	"github.com/ar90n/treerecon/collection"
	"github.com/ar90n/treerecon/common"
	"github.com/sourcegraph/conc/pool"
)

type candidate struct {
	Weight float64
	Src    int
	Dst    int
}

func less(a, b candidate) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.Src != b.Src {
		return a.Src < b.Src
	}
	return a.Dst < b.Dst
}

// collectCandidates runs row for every source index in [0, n), spreading the
// rows over goroutines, and concatenates the results in row order.
func collectCandidates(ctx context.Context, n int, maxGoroutines uint, row func(i int, buf []candidate) []candidate) ([]candidate, error) {
	chunks := common.GetChunks(uint(n), maxGoroutines)
	parts := make([][]candidate, len(chunks))

	p := pool.New().WithMaxGoroutines(len(chunks) + 1).WithErrors()
	for ci, c := range chunks {
		ci, c := ci, c
		p.Go(func() error {
			buf := make([]candidate, 0)
			for i := int(c.Begin); i < int(c.End); i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				buf = row(i, buf)
			}
			parts[ci] = buf
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, part := range parts {
		total += len(part)
	}
	ret := make([]candidate, 0, total)
	for _, part := range parts {
		ret = append(ret, part...)
	}
	return ret, nil
}

// kruskal accepts candidates in ascending (Weight, Src, Dst) order whenever
// their endpoints are still in different classes, stopping at n-1 edges.
func kruskal(n int, candidates []candidate) []treerecon.Edge {
	pq := collection.NewPriorityQueueFrom(candidates, less)
	ds := collection.NewDisjointSet(uint(n))
	edges := make([]treerecon.Edge, 0, n)
	for len(edges) < n-1 {
		c, ok := pq.Pop()
		if !ok {
			break
		}
		if ds.Union(c.Src, c.Dst) {
			edges = append(edges, treerecon.NewEdge(c.Src, c.Dst))
		}
	}
	return edges
}
