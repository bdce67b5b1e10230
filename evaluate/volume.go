package evaluate

import (
	"math"

	"github.com/ar90n/treerecon"
	"gonum.org/v1/gonum/floats"
)

// Tube is the volume of the truncated cone with end radii r1, r2 and height h.
func Tube(r1, r2, h float64) float64 {
	return math.Pi / 3.0 * h * (r1*r1 + r1*r2 + r2*r2)
}

func EdgeVolume(ps *treerecon.PointSet, e treerecon.Edge) float64 {
	return Tube(ps.Radius(e.Src), ps.Radius(e.Dst), ps.Distance(e.Src, e.Dst))
}

// VolumeSum adds the volumes of the distinct edges that do not touch the center.
func VolumeSum(ps *treerecon.PointSet, edges []treerecon.Edge) float64 {
	volumes := make([]float64, 0, len(edges))
	for _, e := range treerecon.UniqueEdges(edges) {
		if e.Touches(treerecon.CenterIndex) {
			continue
		}
		volumes = append(volumes, EdgeVolume(ps, e))
	}
	return floats.Sum(volumes)
}
