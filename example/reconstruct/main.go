package main

import (
	"context"
	"fmt"

	"github.com/ar90n/treerecon/evaluate"
	"github.com/ar90n/treerecon/example"
	"github.com/ar90n/treerecon/metric"
	"github.com/ar90n/treerecon/reconstruct"
)

func main() {
	_, tree, err := example.ReadTree(0.05)
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	for _, method := range reconstruct.Methods() {
		reconstructor, err := reconstruct.New(method, 1.1, metric.InnerProduct, 0)
		if err != nil {
			panic(err)
		}

		edges, err := reconstructor.Reconstruct(ctx, tree.PointSet)
		if err != nil {
			panic(err)
		}

		acc, err := evaluate.Evaluate(edges, tree.Reference, tree.PointSet)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s: %d edges, count %.2f%%, volume %.2f%%\n", method, len(edges), acc.EdgeCount*100, acc.EdgeVolume*100)

		score, err := evaluate.CompareTopology(edges, tree.Reference, tree.PointSet)
		if err != nil {
			fmt.Printf("%s: %v\n", method, err)
			continue
		}
		fmt.Printf("%s: branch depth %.2f%%\n", method, score)
	}
}
