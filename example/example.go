package example

import (
	"bytes"
	_ "embed"

	"github.com/ar90n/treerecon/dataio"
)

//go:embed sample.dat
var sample []byte

// ReadTree returns a small forked tree with its recorded links.
func ReadTree(coefRadius float64) ([]dataio.Record, *dataio.Tree, error) {
	records, err := dataio.ParseDat(bytes.NewReader(sample), dataio.DatDelim)
	if err != nil {
		return nil, nil, err
	}

	tree, err := dataio.NewTree(records, coefRadius)
	if err != nil {
		return nil, nil, err
	}
	return records, tree, nil
}
