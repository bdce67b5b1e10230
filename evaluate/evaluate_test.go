package evaluate

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/ar90n/treerecon"
	"github.com/ar90n/treerecon/reconstruct"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func newPointSet(t *testing.T, positions []r3.Vec, radii []float64) *treerecon.PointSet {
	labels := make([]int, len(positions))
	labelToIndex := make(map[int]int, len(positions))
	for i := range positions {
		labels[i] = i
		labelToIndex[i] = i
	}
	ps, err := treerecon.NewPointSet(positions, radii, labels, labelToIndex)
	require.NoError(t, err)
	return ps
}

func Test_Tube(t *testing.T) {
	type TestCase struct {
		R1, R2, H float64
		Want      float64
	}

	for _, tc := range []TestCase{
		{R1: 1, R2: 1, H: 1, Want: math.Pi},
		{R1: 2, R2: 2, H: 3, Want: math.Pi * 4 * 3},
		{R1: 1, R2: 0, H: 3, Want: math.Pi},
		{R1: 1, R2: 2, H: 1, Want: 7 * math.Pi / 3},
		{R1: 5, R2: 5, H: 0, Want: 0},
	} {
		assert.InDelta(t, tc.Want, Tube(tc.R1, tc.R2, tc.H), 1e-12)
	}
}

func Test_EvaluateStarScenario(t *testing.T) {
	ps := newPointSet(t, []r3.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}}, []float64{1, 1, 1, 1})
	reference := []treerecon.Edge{{Src: 0, Dst: 1}, {Src: 0, Dst: 2}, {Src: 0, Dst: 3}}

	edges, err := reconstruct.NewMstReconstructor().Reconstruct(context.Background(), ps)
	require.NoError(t, err)

	acc, err := Evaluate(edges, reference, ps)
	require.NoError(t, err)
	assert.Equal(t, 1.0, acc.EdgeCount)
	assert.Equal(t, 1.0, acc.EdgeVolume)
}

func Test_EvaluatePartialMatch(t *testing.T) {
	ps := newPointSet(t, []r3.Vec{{}, {X: 1}, {X: 2}, {X: 3}}, []float64{1, 1, 2, 2})
	reference := []treerecon.Edge{{Src: 1, Dst: 0}, {Src: 2, Dst: 1}, {Src: 3, Dst: 2}}
	reconstructed := []treerecon.Edge{{Src: 0, Dst: 1}, {Src: 1, Dst: 2}, {Src: 3, Dst: 1}, {Src: 1, Dst: 2}}

	acc, err := Evaluate(reconstructed, reference, ps)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, acc.EdgeCount, 1e-12)
	assert.InDelta(t, 7.0/19.0, acc.EdgeVolume, 1e-12)
}

func Test_EvaluateSelf(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for trial := 0; trial < 10; trial++ {
		n := 3 + r.Intn(20)
		positions := make([]r3.Vec, n)
		radii := make([]float64, n)
		for i := range positions {
			positions[i] = r3.Vec{X: r.NormFloat64(), Y: r.NormFloat64(), Z: r.NormFloat64()}
			radii[i] = r.Float64()
		}
		ps := newPointSet(t, positions, radii)

		edges, err := reconstruct.NewSekiharaReconstructor().Reconstruct(context.Background(), ps)
		require.NoError(t, err)

		acc, err := Evaluate(edges, edges, ps)
		require.NoError(t, err)
		assert.Equal(t, 1.0, acc.EdgeCount)
		assert.InDelta(t, 1.0, acc.EdgeVolume, 1e-12)
	}
}

func Test_EvaluateErrors(t *testing.T) {
	ps := newPointSet(t, []r3.Vec{{}, {X: 1}}, []float64{1, 1})

	_, err := Evaluate([]treerecon.Edge{{Src: 0, Dst: 1}}, nil, ps)
	assert.True(t, errors.Is(err, treerecon.ErrEmptyReference))

	_, err = Evaluate([]treerecon.Edge{{Src: 0, Dst: 1}}, []treerecon.Edge{{Src: 1, Dst: 1}}, ps)
	assert.True(t, errors.Is(err, treerecon.ErrEmptyReference))

	_, err = Evaluate([]treerecon.Edge{{Src: 0, Dst: 5}}, []treerecon.Edge{{Src: 0, Dst: 1}}, ps)
	assert.True(t, errors.Is(err, treerecon.ErrIndexOutOfRange))
}

func branchingPointSet(t *testing.T) *treerecon.PointSet {
	return newPointSet(t, []r3.Vec{{}, {X: 1}, {X: 2, Y: 1}, {X: 2, Y: -1}}, []float64{1, 1, 1, 1})
}

func Test_RelationMatrixBranching(t *testing.T) {
	ps := branchingPointSet(t)
	rm, err := NewRelationMatrix(ps, []treerecon.Edge{{Src: 1, Dst: 0}, {Src: 2, Dst: 1}, {Src: 3, Dst: 1}})
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 1}, rm.Order)
	assert.Equal(t, [][]int{
		{0, 0, 1},
		{0, 0, 1},
		{0, 0, 0},
	}, rm.Values)
}

func Test_RelationMatrixChain(t *testing.T) {
	ps := newPointSet(t, []r3.Vec{{}, {X: 1}, {X: 2}, {X: 3}}, []float64{1, 1, 1, 1})
	rm, err := NewRelationMatrix(ps, []treerecon.Edge{{Src: 0, Dst: 1}, {Src: 2, Dst: 1}, {Src: 2, Dst: 3}})
	require.NoError(t, err)

	assert.Equal(t, []int{3, 2, 1}, rm.Order)
	assert.Equal(t, [][]int{
		{0, 1, 1},
		{0, 0, 1},
		{0, 0, 0},
	}, rm.Values)
}

func Test_BranchDepthsIgnoreEdgeDirection(t *testing.T) {
	ps := branchingPointSet(t)
	a, err := NewRelationMatrix(ps, []treerecon.Edge{{Src: 1, Dst: 0}, {Src: 2, Dst: 1}, {Src: 3, Dst: 1}})
	require.NoError(t, err)
	b, err := NewRelationMatrix(ps, []treerecon.Edge{{Src: 0, Dst: 1}, {Src: 1, Dst: 2}, {Src: 1, Dst: 3}})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func Test_CompareTopology(t *testing.T) {
	ps := branchingPointSet(t)
	reference := []treerecon.Edge{{Src: 1, Dst: 0}, {Src: 2, Dst: 1}, {Src: 3, Dst: 1}}

	score, err := CompareTopology(reference, reference, ps)
	require.NoError(t, err)
	assert.Equal(t, 100.0, score)

	score, err = CompareTopology([]treerecon.Edge{{Src: 1, Dst: 0}, {Src: 2, Dst: 1}, {Src: 3, Dst: 2}}, reference, ps)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, score, 1e-12)
}

func Test_CompareTopologyDisconnected(t *testing.T) {
	ps := branchingPointSet(t)
	reference := []treerecon.Edge{{Src: 1, Dst: 0}, {Src: 2, Dst: 1}, {Src: 3, Dst: 1}}

	_, err := CompareTopology([]treerecon.Edge{{Src: 1, Dst: 0}, {Src: 2, Dst: 1}}, reference, ps)
	assert.True(t, errors.Is(err, treerecon.ErrDisconnected))

	_, err = CompareTopology(reference, []treerecon.Edge{{Src: 2, Dst: 1}, {Src: 3, Dst: 1}}, ps)
	assert.True(t, errors.Is(err, treerecon.ErrDisconnected))
}

func Test_CompareTopologyEmptyReference(t *testing.T) {
	ps := newPointSet(t, []r3.Vec{{}, {X: 1}, {Y: 1}}, []float64{1, 1, 1})
	star := []treerecon.Edge{{Src: 1, Dst: 0}, {Src: 2, Dst: 0}}

	_, err := CompareTopology(star, star, ps)
	assert.True(t, errors.Is(err, treerecon.ErrEmptyReference))
}

func Test_CompareRelationMatricesShape(t *testing.T) {
	_, err := CompareRelationMatrices(RelationMatrix{Values: [][]int{{0}}}, RelationMatrix{})
	assert.True(t, errors.Is(err, treerecon.ErrShapeMismatch))
}
