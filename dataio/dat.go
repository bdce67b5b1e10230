package dataio

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ar90n/treerecon"
	"github.com/cockroachdb/errors"
)

// Record is one line of a dat/csv file: x y z diameter label parent_label.
type Record struct {
	X, Y, Z     float64
	Diameter    float64
	Label       int
	ParentLabel int
}

const (
	DatDelim = " "
	CsvDelim = ","
)

// DelimOf picks the field separator from the file extension.
func DelimOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dat":
		return DatDelim, nil
	case ".csv":
		return CsvDelim, nil
	default:
		return "", errors.Wrapf(ErrFileFormat, "%s", path)
	}
}

func LoadDat(path string) ([]Record, error) {
	delim, err := DelimOf(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := ParseDat(file, delim)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return records, nil
}

// ParseDat reads records, skipping blank lines and lines starting with '#'.
func ParseDat(r io.Reader, delim string) ([]Record, error) {
	records := make([]Record, 0)
	scanner := bufio.NewScanner(r)
	for ln := 1; scanner.Scan(); ln++ {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		record, err := parseLine(line, delim)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", ln)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func splitFields(line, delim string) []string {
	if delim == DatDelim {
		return strings.Fields(line)
	}

	fields := strings.Split(line, delim)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

func parseLine(line, delim string) (Record, error) {
	fields := splitFields(line, delim)
	if len(fields) != 6 {
		return Record{}, errors.Wrapf(ErrSyntax, "want 6 fields, got %d", len(fields))
	}

	var floats [4]float64
	for i := range floats {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Record{}, errors.Wrapf(ErrSyntax, "field %d: %q", i+1, fields[i])
		}
		floats[i] = v
	}

	var ints [2]int
	for i := range ints {
		v, err := strconv.Atoi(fields[4+i])
		if err != nil {
			return Record{}, errors.Wrapf(ErrSyntax, "field %d: %q", 5+i, fields[4+i])
		}
		ints[i] = v
	}

	return Record{
		X:           floats[0],
		Y:           floats[1],
		Z:           floats[2],
		Diameter:    floats[3],
		Label:       ints[0],
		ParentLabel: ints[1],
	}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteDat writes the records back with the parent labels taken from parents,
// indexed like the point set the records were converted to.
func WriteDat(w io.Writer, records []Record, ps *treerecon.PointSet, parents []int, delim string) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		i, ok := ps.IndexOf(rec.Label)
		if !ok {
			continue
		}

		parent := ps.Label(parents[i])
		fields := []string{
			formatFloat(rec.X),
			formatFloat(rec.Y),
			formatFloat(rec.Z),
			formatFloat(rec.Diameter),
			strconv.Itoa(rec.Label),
			strconv.Itoa(parent),
		}
		if _, err := bw.WriteString(strings.Join(fields, delim) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
