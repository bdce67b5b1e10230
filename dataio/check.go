package dataio

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

type WarningKind int

const (
	DuplicateLabel WarningKind = iota
	ZeroLengthLink
	LongLink
)

type LinkWarning struct {
	Kind        WarningKind
	Label       int
	ParentLabel int
	Distance    float64
}

func (w LinkWarning) String() string {
	switch w.Kind {
	case DuplicateLabel:
		return fmt.Sprintf("label=%d appears more than once", w.Label)
	case ZeroLengthLink:
		return fmt.Sprintf("label=%d and label=%d are at distance 0", w.Label, w.ParentLabel)
	default:
		return fmt.Sprintf("label=%d and label=%d are at distance %v", w.Label, w.ParentLabel, w.Distance)
	}
}

// CheckLinks reports duplicate labels, links of zero length and, when thresh
// is positive, links longer than thresh. Links to unknown parents are ignored.
func CheckLinks(records []Record, thresh float64) []LinkWarning {
	type point struct {
		pos    r3.Vec
		parent int
	}

	warnings := make([]LinkWarning, 0)
	points := map[int]point{}
	for _, rec := range records {
		if _, ok := points[rec.Label]; ok {
			warnings = append(warnings, LinkWarning{Kind: DuplicateLabel, Label: rec.Label})
		}
		points[rec.Label] = point{pos: r3.Vec{X: rec.X, Y: rec.Y, Z: rec.Z}, parent: rec.ParentLabel}
	}

	labels := make([]int, 0, len(points))
	for label := range points {
		labels = append(labels, label)
	}
	sort.Ints(labels)

	for _, label := range labels {
		p := points[label]
		q, ok := points[p.parent]
		if !ok {
			continue
		}

		d := r3.Norm(r3.Sub(p.pos, q.pos))
		if d == 0.0 && label != p.parent {
			warnings = append(warnings, LinkWarning{Kind: ZeroLengthLink, Label: label, ParentLabel: p.parent})
		}
		if 0 < thresh && thresh < d {
			warnings = append(warnings, LinkWarning{Kind: LongLink, Label: label, ParentLabel: p.parent, Distance: d})
		}
	}

	return warnings
}
