package config

import (
	"bytes"
	"io"
	"os"

	"github.com/ar90n/treerecon"
	"github.com/ar90n/treerecon/metric"
	"github.com/ar90n/treerecon/reconstruct"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	OutputVTK = "vtk"
	OutputDat = "dat"
)

// Config holds the settings of one reconstruction run.
type Config struct {
	Method        string  `yaml:"method"`
	Alpha         float64 `yaml:"alpha"`
	Mode          string  `yaml:"mode"`
	CoefRadius    float64 `yaml:"coef_radius"`
	Output        string  `yaml:"output"`
	MaxGoroutines uint    `yaml:"max_goroutines"`
}

func Default() Config {
	return Config{
		Method:     reconstruct.MethodSekihara,
		Alpha:      1.1,
		Mode:       metric.InnerProduct.String(),
		CoefRadius: 0.05,
		Output:     OutputVTK,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values and unknown keys are rejected.
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	cfg, err := Parse(file)
	if err != nil {
		return Config{}, errors.Wrapf(err, "%s", path)
	}
	return cfg, nil
}

func Parse(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "%v", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := c.Reconstructor(); err != nil {
		return err
	}
	if c.CoefRadius < 0 {
		return errors.Wrapf(ErrInvalidConfig, "coef_radius must be non-negative: %v", c.CoefRadius)
	}
	switch c.Output {
	case OutputVTK, OutputDat:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown output %q", c.Output)
	}
	return nil
}

// Reconstructor builds the reconstructor the config selects.
func (c Config) Reconstructor() (treerecon.Reconstructor, error) {
	mode, err := metric.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}
	return reconstruct.New(c.Method, c.Alpha, mode, c.MaxGoroutines)
}
