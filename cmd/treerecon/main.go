package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/ar90n/treerecon"
	"github.com/ar90n/treerecon/config"
	"github.com/ar90n/treerecon/dataio"
	"github.com/ar90n/treerecon/evaluate"
	"github.com/ar90n/treerecon/reconstruct"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

func startProfile(profileOutputName string) (func(), error) {
	if profileOutputName == "" {
		return func() {}, nil
	}

	f, err := os.Create(profileOutputName)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

// loadConfig reads the config file when given and applies the flags the user
// set explicitly on top of it.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if c.IsSet("method") {
		cfg.Method = c.String("method")
	}
	if c.IsSet("alpha") {
		cfg.Alpha = c.Float64("alpha")
	}
	if c.IsSet("mode") {
		cfg.Mode = c.String("mode")
	}
	if c.IsSet("coef-radius") {
		cfg.CoefRadius = c.Float64("coef-radius")
	}
	if c.IsSet("format") {
		cfg.Output = c.String("format")
	}
	if c.IsSet("max-goroutines") {
		cfg.MaxGoroutines = c.Uint("max-goroutines")
	}

	return cfg, cfg.Validate()
}

func loadTree(inputName string, coefRadius float64, maxGoroutines uint, checkThresh float64) ([]dataio.Record, *dataio.Tree, error) {
	records, err := dataio.LoadDat(inputName)
	if err != nil {
		return nil, nil, err
	}
	for _, w := range dataio.CheckLinks(records, checkThresh) {
		log.Println("warning:", w)
	}

	tree, err := dataio.NewTree(records, coefRadius, treerecon.WithMaxGoroutines(maxGoroutines))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "%s", inputName)
	}
	return records, tree, nil
}

func createOutput(outputName string) (io.WriteCloser, error) {
	if outputName == "" || outputName == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(outputName)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func printSummary(w io.Writer, reconstructed []treerecon.Edge, tree *dataio.Tree) error {
	acc, err := evaluate.Evaluate(reconstructed, tree.Reference, tree.PointSet)
	if errors.Is(err, treerecon.ErrEmptyReference) {
		fmt.Fprintln(w, "no reference links, skipping evaluation")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "edge count: %.2f%%\n", acc.EdgeCount*100.0)
	fmt.Fprintf(w, "edge volume: %.2f%%\n", acc.EdgeVolume*100.0)

	score, err := evaluate.CompareTopology(reconstructed, tree.Reference, tree.PointSet)
	switch {
	case errors.Is(err, treerecon.ErrDisconnected):
		fmt.Fprintln(w, "branch depth: tree is disconnected")
	case errors.Is(err, treerecon.ErrEmptyReference):
		fmt.Fprintln(w, "branch depth: reference has no related pairs")
	case err != nil:
		return err
	default:
		fmt.Fprintf(w, "branch depth: %.2f%%\n", score)
	}
	return nil
}

func reconstructAction(c *cli.Context) error {
	stop, err := startProfile(c.String("profile-output"))
	if err != nil {
		return err
	}
	defer stop()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	reconstructor, err := cfg.Reconstructor()
	if err != nil {
		return err
	}

	log.Println("reading data...")
	records, tree, err := loadTree(c.String("input"), cfg.CoefRadius, cfg.MaxGoroutines, c.Float64("check-thresh"))
	if err != nil {
		return err
	}
	log.Println("done")

	log.Printf("reconstructing %d points with %s...\n", tree.PointSet.Len(), cfg.Method)
	edges, err := reconstructor.Reconstruct(c.Context, tree.PointSet)
	if err != nil {
		return err
	}
	log.Println("done")

	if err := printSummary(os.Stderr, edges, tree); err != nil {
		return err
	}

	log.Println("saving result...")
	out, err := createOutput(c.String("output"))
	if err != nil {
		return err
	}
	defer out.Close()

	ps := tree.PointSet
	switch cfg.Output {
	case config.OutputDat:
		parents, err := dataio.Parents(ps.Len(), edges)
		if err != nil {
			return err
		}
		delim, err := dataio.DelimOf(c.String("input"))
		if err != nil {
			return err
		}
		err = dataio.WriteDat(out, records, ps, parents, delim)
		if err != nil {
			return err
		}
	default:
		if err := dataio.WriteVTK(out, ps.Positions(), ps.Radii(), edges, nil); err != nil {
			return err
		}
	}
	log.Println("done")

	return nil
}

func evaluateAction(c *cli.Context) error {
	_, reference, err := loadTree(c.String("reference"), 1.0, c.Uint("max-goroutines"), 0)
	if err != nil {
		return err
	}
	records, err := dataio.LoadDat(c.String("input"))
	if err != nil {
		return err
	}

	ps := reference.PointSet
	edges := make([]treerecon.Edge, 0, len(records))
	for _, rec := range records {
		i, ok := ps.IndexOf(rec.Label)
		if !ok {
			return errors.Wrapf(treerecon.ErrInvalidLabelMapping, "label %d is not in the reference", rec.Label)
		}
		j, ok := ps.IndexOf(rec.ParentLabel)
		if !ok || i == j {
			continue
		}
		edges = append(edges, treerecon.NewEdge(i, j))
	}

	return printSummary(os.Stdout, edges, reference)
}

func datToVtkAction(c *cli.Context) error {
	records, tree, err := loadTree(c.String("input"), c.Float64("coef-radius"), 0, c.Float64("check-thresh"))
	if err != nil {
		return err
	}

	ps := tree.PointSet
	roots := make([]int, 0)
	for _, rec := range records {
		if rec.ParentLabel == 0 {
			i, _ := ps.IndexOf(rec.Label)
			roots = append(roots, i)
		}
	}
	labels := make([]float64, ps.Len())
	for i := range labels {
		labels[i] = float64(ps.Label(i))
	}
	scalars := map[string][]float64{
		"label":         labels,
		"path_distance": dataio.PathDistance(ps.Positions(), tree.Reference, roots),
	}

	var edges []treerecon.Edge
	if !c.Bool("sphere") {
		edges = tree.Reference
	}

	out, err := createOutput(c.String("output"))
	if err != nil {
		return err
	}
	defer out.Close()
	return dataio.WriteVTK(out, ps.Positions(), ps.Radii(), edges, scalars)
}

func swcToVtkAction(c *cli.Context) error {
	file, err := os.Open(c.String("input"))
	if err != nil {
		return err
	}
	defer file.Close()

	tree, err := dataio.ParseSWC(file)
	if err != nil {
		return errors.Wrapf(err, "%s", c.String("input"))
	}

	var edges []treerecon.Edge
	if !c.Bool("sphere") {
		edges = tree.Links
	}

	out, err := createOutput(c.String("output"))
	if err != nil {
		return err
	}
	defer out.Close()
	return dataio.WriteVTK(out, tree.Positions, tree.Radii, edges, nil)
}

func datToSwcAction(c *cli.Context) error {
	records, tree, err := loadTree(c.String("input"), 1.0, 0, c.Float64("check-thresh"))
	if err != nil {
		return err
	}

	out, err := createOutput(c.String("output"))
	if err != nil {
		return err
	}
	defer out.Close()
	return dataio.WriteSWC(out, records, tree, dataio.SwcOptions{
		StartLabel:   c.Int("start-label"),
		CenterHeight: c.Float64("center-height"),
		CenterRadius: c.Float64("center-radius"),
	})
}

func inputFlag(usage string) cli.Flag {
	return &cli.StringFlag{
		Name:     "input",
		Aliases:  []string{"i"},
		Required: true,
		Usage:    usage,
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Value:   "-",
		Usage:   "output file (- for stdout)",
	}
}

func checkFlag() cli.Flag {
	return &cli.Float64Flag{
		Name:  "check-thresh",
		Value: 0,
		Usage: "warn about links longer than this (0 disables)",
	}
}

func main() {
	defaults := config.Default()
	app := &cli.App{
		Name:     "treerecon",
		HelpName: "treerecon",
		Usage:    "reconstruct tree structures from point samples",
		Commands: []*cli.Command{
			{
				Name:      "reconstruct",
				Usage:     "reconstruct links of a dat/csv file",
				UsageText: "treerecon reconstruct [command options]",
				Action:    reconstructAction,
				Flags: []cli.Flag{
					inputFlag("dat or csv file"),
					outputFlag(),
					checkFlag(),
					&cli.StringFlag{
						Name:  "config",
						Usage: "yaml config file",
					},
					&cli.StringFlag{
						Name:  "method",
						Value: defaults.Method,
						Usage: "reconstruction method (" + strings.Join(reconstruct.Methods(), ", ") + ")",
					},
					&cli.Float64Flag{
						Name:  "alpha",
						Value: defaults.Alpha,
						Usage: "weight of the direction term",
					},
					&cli.StringFlag{
						Name:  "mode",
						Value: defaults.Mode,
						Usage: "cost variant (inner-product, angle)",
					},
					&cli.Float64Flag{
						Name:  "coef-radius",
						Value: defaults.CoefRadius,
						Usage: "radius per unit of diameter",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: defaults.Output,
						Usage: "output format (vtk, dat)",
					},
					&cli.UintFlag{
						Name:  "max-goroutines",
						Value: defaults.MaxGoroutines,
						Usage: "number of goroutines (0 for all cpus)",
					},
					&cli.StringFlag{
						Name:  "profile-output",
						Usage: "profile output file",
					},
				},
			},
			{
				Name:      "evaluate",
				Usage:     "compare the links of two dat/csv files",
				UsageText: "treerecon evaluate [command options]",
				Action:    evaluateAction,
				Flags: []cli.Flag{
					inputFlag("reconstructed dat or csv file"),
					&cli.StringFlag{
						Name:     "reference",
						Aliases:  []string{"r"},
						Required: true,
						Usage:    "reference dat or csv file",
					},
					&cli.UintFlag{
						Name:  "max-goroutines",
						Usage: "number of goroutines (0 for all cpus)",
					},
				},
			},
			{
				Name:      "dat2vtk",
				Usage:     "convert a dat/csv file to vtk",
				UsageText: "treerecon dat2vtk [command options]",
				Action:    datToVtkAction,
				Flags: []cli.Flag{
					inputFlag("dat or csv file"),
					outputFlag(),
					checkFlag(),
					&cli.Float64Flag{
						Name:  "coef-radius",
						Value: defaults.CoefRadius,
						Usage: "radius per unit of diameter",
					},
					&cli.BoolFlag{
						Name:  "sphere",
						Usage: "write points only",
					},
				},
			},
			{
				Name:      "swc2vtk",
				Usage:     "convert a swc file to vtk",
				UsageText: "treerecon swc2vtk [command options]",
				Action:    swcToVtkAction,
				Flags: []cli.Flag{
					inputFlag("swc file"),
					outputFlag(),
					&cli.BoolFlag{
						Name:  "sphere",
						Usage: "write points only",
					},
				},
			},
			{
				Name:      "dat2swc",
				Usage:     "convert a dat/csv file to swc",
				UsageText: "treerecon dat2swc [command options]",
				Action:    datToSwcAction,
				Flags: []cli.Flag{
					inputFlag("dat or csv file"),
					outputFlag(),
					checkFlag(),
					&cli.IntFlag{
						Name:  "start-label",
						Value: -1,
						Usage: "write only the subtree below this label (-1 for all)",
					},
					&cli.Float64Flag{
						Name:  "center-height",
						Value: 0,
						Usage: "offset of the synthetic root below the center",
					},
					&cli.Float64Flag{
						Name:  "center-radius",
						Value: 1,
						Usage: "radius of the synthetic root and the center",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
