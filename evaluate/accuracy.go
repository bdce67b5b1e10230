package evaluate

import (
	"github.com/ar90n/treerecon"
	"github.com/cockroachdb/errors"
)

type Accuracy struct {
	EdgeCount  float64
	EdgeVolume float64
}

// Evaluate scores reconstructed against reference. EdgeCount is the share of
// reference edges found in reconstructed; EdgeVolume is the same share
// weighted by tube volume, ignoring edges that touch the center. A reference
// without any volume scores EdgeVolume 1.
func Evaluate(reconstructed, reference []treerecon.Edge, ps *treerecon.PointSet) (Accuracy, error) {
	if err := validateEdges(ps, reconstructed); err != nil {
		return Accuracy{}, err
	}
	if err := validateEdges(ps, reference); err != nil {
		return Accuracy{}, err
	}

	ref := treerecon.EdgeSet(reference)
	if len(ref) == 0 {
		return Accuracy{}, treerecon.ErrEmptyReference
	}

	matched := make([]treerecon.Edge, 0, len(ref))
	for _, e := range treerecon.UniqueEdges(reconstructed) {
		if _, ok := ref[e.Key()]; ok {
			matched = append(matched, e)
		}
	}

	ret := Accuracy{
		EdgeCount:  float64(len(matched)) / float64(len(ref)),
		EdgeVolume: 1.0,
	}
	if total := VolumeSum(ps, reference); total != 0.0 {
		ret.EdgeVolume = VolumeSum(ps, matched) / total
	}
	return ret, nil
}

func validateEdges(ps *treerecon.PointSet, edges []treerecon.Edge) error {
	n := ps.Len()
	for _, e := range edges {
		if e.Src < 0 || n <= e.Src || e.Dst < 0 || n <= e.Dst {
			return errors.Wrapf(treerecon.ErrIndexOutOfRange, "edge (%d, %d) with %d nodes", e.Src, e.Dst, n)
		}
	}
	return nil
}
