package dataio

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/ar90n/treerecon"
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// WriteVTK writes a legacy ASCII POLYDATA file with one LINE per edge. A nil
// edges slice writes the points only. Extra scalars are written in name order
// and must have one value per point.
func WriteVTK(w io.Writer, positions []r3.Vec, radii []float64, edges []treerecon.Edge, scalars map[string][]float64) error {
	n := len(positions)
	if len(radii) != n {
		return errors.Wrapf(treerecon.ErrShapeMismatch, "len(positions)=%d, len(radii)=%d", n, len(radii))
	}
	names := make([]string, 0, len(scalars))
	for name, values := range scalars {
		if len(values) != n {
			return errors.Wrapf(treerecon.ErrShapeMismatch, "scalar %s has %d values for %d points", name, len(values), n)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# vtk DataFile Version 2.0")
	fmt.Fprintln(bw, "SWC Data")
	fmt.Fprintln(bw, "ASCII")
	fmt.Fprintln(bw, "DATASET POLYDATA")

	fmt.Fprintf(bw, "POINTS %d float\n", n)
	for _, p := range positions {
		fmt.Fprintf(bw, "%.7g %.7g %.7g\n", p.X, p.Y, p.Z)
	}

	if edges != nil {
		fmt.Fprintf(bw, "LINES %d %d\n", len(edges), 3*len(edges))
		for _, e := range edges {
			fmt.Fprintf(bw, "2 %d %d\n", e.Src, e.Dst)
		}
	}

	fmt.Fprintf(bw, "POINT_DATA %d\n", n)
	writeScalars(bw, "radius", radii)
	for _, name := range names {
		writeScalars(bw, name, scalars[name])
	}

	return bw.Flush()
}

func writeScalars(w io.Writer, name string, values []float64) {
	fmt.Fprintf(w, "SCALARS %s float\n", name)
	fmt.Fprintln(w, "LOOKUP_TABLE default")
	for _, v := range values {
		fmt.Fprintf(w, "%.7g\n", v)
	}
}
