// SPDX-License-Identifier: MIT

package plan

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrUnsupportedFormat indicates a plan file extension other than
	// .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("plan: unsupported file format")

	// ErrDecode wraps a YAML or TOML syntax or schema error.
	ErrDecode = errors.New("plan: cannot decode")

	// ErrEmptyName indicates an entry without a name.
	ErrEmptyName = errors.New("plan: entry has no name")

	// ErrDuplicateName indicates a name defined twice.
	ErrDuplicateName = errors.New("plan: duplicate name")

	// ErrUnknownName indicates a reference to a name not defined earlier.
	ErrUnknownName = errors.New("plan: unknown name")

	// ErrNoSource indicates a measurement with neither or both of dataset
	// and samples.
	ErrNoSource = errors.New("plan: measurement needs exactly one of dataset or samples")

	// ErrUnknownOp indicates a derived entry with an unrecognised op.
	ErrUnknownOp = errors.New("plan: unknown op")

	// ErrNoArgs indicates a derived entry without args, or an expr entry
	// without an expression.
	ErrNoArgs = errors.New("plan: derived entry needs args")
)

// Format is a plan file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Derived operations.
const (
	OpExpr         = "expr"
	OpMean         = "mean"
	OpWeightedMean = "weighted_mean"
)

// Plan is a decoded plan file.
type Plan struct {
	Measurements []Measurement `yaml:"measurements" toml:"measurements"`
	Quantities   []Quantity    `yaml:"quantities" toml:"quantities"`
	Derived      []Derived     `yaml:"derived" toml:"derived"`

	// Dir is the base for relative dataset paths. Load sets it to the
	// plan file's directory.
	Dir string `yaml:"-" toml:"-"`
}

// Measurement is a raw sample set.
type Measurement struct {
	Name              string    `yaml:"name" toml:"name"`
	Dataset           string    `yaml:"dataset" toml:"dataset"`
	Samples           []float64 `yaml:"samples" toml:"samples"`
	DeviceUncertainty float64   `yaml:"device_uncertainty" toml:"device_uncertainty"`
}

// Quantity is a value with a known standard uncertainty.
type Quantity struct {
	Name        string  `yaml:"name" toml:"name"`
	Value       float64 `yaml:"value" toml:"value"`
	Uncertainty float64 `yaml:"uncertainty" toml:"uncertainty"`
}

// Derived combines earlier entries.
type Derived struct {
	Name string   `yaml:"name" toml:"name"`
	Op   string   `yaml:"op" toml:"op"`
	Expr string   `yaml:"expr" toml:"expr"`
	Args []string `yaml:"args" toml:"args"`
}

// op returns the effective operation.
func (d Derived) op() string {
	if d.Op == "" {
		return OpExpr
	}
	return d.Op
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads, decodes and validates the plan at path.
func Load(path string) (*Plan, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}

	p, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.Dir = filepath.Dir(path)

	return p, nil
}

// Parse decodes and validates a plan. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Plan, error) {
	var p Plan

	switch format {
	case FormatYAML:
		if err := yaml.UnmarshalWithOptions(data, &p, yaml.DisallowUnknownField()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	case FormatTOML:
		if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&p); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Validate checks names, references and sources without touching the
// file system.
func (p *Plan) Validate() error {
	defined := make(map[string]struct{})
	define := func(kind, name string) error {
		if name == "" {
			return fmt.Errorf("%w: %s", ErrEmptyName, kind)
		}
		if _, dup := defined[name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		defined[name] = struct{}{}
		return nil
	}

	for _, m := range p.Measurements {
		if err := define("measurement", m.Name); err != nil {
			return err
		}
		if (m.Dataset == "") == (len(m.Samples) == 0) {
			return fmt.Errorf("%w: %q", ErrNoSource, m.Name)
		}
	}
	for _, q := range p.Quantities {
		if err := define("quantity", q.Name); err != nil {
			return err
		}
	}
	for _, d := range p.Derived {
		if len(d.Args) == 0 || (d.op() == OpExpr && strings.TrimSpace(d.Expr) == "") {
			return fmt.Errorf("%w: %q", ErrNoArgs, d.Name)
		}
		for _, arg := range d.Args {
			if _, ok := defined[arg]; !ok {
				return fmt.Errorf("%w: %q used by %q", ErrUnknownName, arg, d.Name)
			}
		}
		switch d.op() {
		case OpExpr, OpMean, OpWeightedMean:
		default:
			return fmt.Errorf("%w: %q in %q", ErrUnknownOp, d.Op, d.Name)
		}
		if err := define("derived", d.Name); err != nil {
			return err
		}
	}

	return nil
}

// datasetPath resolves a measurement's dataset against Dir.
func (p *Plan) datasetPath(name string) string {
	if filepath.IsAbs(name) || p.Dir == "" {
		return name
	}
	return filepath.Join(p.Dir, name)
}
