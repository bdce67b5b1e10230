package dataio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ar90n/treerecon"
	"github.com/ar90n/treerecon/graph"
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// SwcTree is the content of an SWC file with ids compressed to indices in
// file order.
type SwcTree struct {
	Root      int
	Positions []r3.Vec
	Radii     []float64
	Links     []treerecon.Edge
}

type swcLine struct {
	id, parent int
	pos        r3.Vec
	radius     float64
}

// ParseSWC reads "id type x y z radius parent" lines. Parent -1 marks the root.
func ParseSWC(r io.Reader) (*SwcTree, error) {
	lines := make([]swcLine, 0)
	idToIndex := map[int]int{}

	scanner := bufio.NewScanner(r)
	for ln := 1; scanner.Scan(); ln++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 7 {
			return nil, errors.Wrapf(ErrSyntax, "line %d: want 7 fields, got %d", ln, len(fields))
		}

		var ints [3]int
		for k, f := range []string{fields[0], fields[1], fields[6]} {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(ErrSyntax, "line %d: %q", ln, f)
			}
			ints[k] = v
		}
		var floats [4]float64
		for k, f := range fields[2:6] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, errors.Wrapf(ErrSyntax, "line %d: %q", ln, f)
			}
			floats[k] = v
		}

		idToIndex[ints[0]] = len(lines)
		lines = append(lines, swcLine{
			id:     ints[0],
			parent: ints[2],
			pos:    r3.Vec{X: floats[0], Y: floats[1], Z: floats[2]},
			radius: floats[3],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	tree := &SwcTree{
		Root:      -1,
		Positions: make([]r3.Vec, len(lines)),
		Radii:     make([]float64, len(lines)),
		Links:     make([]treerecon.Edge, 0, len(lines)),
	}
	for i, l := range lines {
		tree.Positions[i] = l.pos
		tree.Radii[i] = l.radius
		if l.parent == -1 {
			tree.Root = i
			continue
		}
		parent, ok := idToIndex[l.parent]
		if !ok {
			return nil, errors.Wrapf(ErrSyntax, "node %d: parent %d not found", l.id, l.parent)
		}
		tree.Links = append(tree.Links, treerecon.NewEdge(i, parent))
	}

	return tree, nil
}

type SwcOptions struct {
	// StartLabel restricts the output to the subtree below this label when
	// non-negative.
	StartLabel   int
	CenterHeight float64
	CenterRadius float64
}

// WriteSWC converts dat records to SWC. Ids are shifted by one so the center
// record (label 0, parent 0) becomes id 1, hanging from an extra id 0 placed
// CenterHeight below it.
func WriteSWC(w io.Writer, records []Record, t *Tree, opts SwcOptions) error {
	keep, err := subtreeFilter(t, opts.StartLabel)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	line := func(values ...string) {
		bw.WriteString(strings.Join(values, " ") + "\n")
	}
	for _, rec := range records {
		i, _ := t.PointSet.IndexOf(rec.Label)
		if keep != nil && !keep[i] {
			continue
		}

		x, y, z := formatFloat(rec.X), formatFloat(rec.Y), formatFloat(rec.Z)
		if rec.Label == 0 && rec.ParentLabel == 0 {
			r := formatFloat(opts.CenterRadius)
			line("0", "0", x, y, formatFloat(rec.Z-opts.CenterHeight), r, "-1")
			line("1", "0", x, y, z, r, "0")
			continue
		}
		line(strconv.Itoa(rec.Label+1), "0", x, y, z, formatFloat(rec.Diameter*0.5), strconv.Itoa(rec.ParentLabel+1))
	}

	return bw.Flush()
}

// subtreeFilter marks the start node and everything below it when the tree
// is rooted at the center. A negative start keeps everything.
func subtreeFilter(t *Tree, start int) ([]bool, error) {
	if start < 0 {
		return nil, nil
	}
	s, ok := t.PointSet.IndexOf(start)
	if !ok {
		return nil, errors.Wrapf(treerecon.ErrInvalidLabelMapping, "start label %d not found", start)
	}

	g, err := graph.FromUndirectedEdges(uint(t.PointSet.Len()), t.Reference)
	if err != nil {
		return nil, err
	}
	bfs := g.BFSTree(treerecon.CenterIndex)

	keep := make([]bool, t.PointSet.Len())
	for i := range keep {
		keep[i] = bfs.IsAncestor(uint(s), uint(i))
	}
	return keep, nil
}
