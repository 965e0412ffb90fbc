package units

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Definitions is the document format for user-defined units.
type Definitions struct {
	Units   []UnitDef    `yaml:"units" toml:"units"`
	Derived []DerivedDef `yaml:"derived" toml:"derived"`
}

// UnitDef defines a linear unit, converted to the base unit of its space by
// base = value*factor + offset.
type UnitDef struct {
	Name    string   `yaml:"name" toml:"name"`
	Space   string   `yaml:"space" toml:"space"`
	Factor  string   `yaml:"factor" toml:"factor"`
	Offset  string   `yaml:"offset,omitempty" toml:"offset,omitempty"`
	Pi      bool     `yaml:"pi,omitempty" toml:"pi,omitempty"`
	Aliases []string `yaml:"aliases,omitempty" toml:"aliases,omitempty"`
	Metric  bool     `yaml:"metric,omitempty" toml:"metric,omitempty"`
}

// DerivedDef defines a derived unit as a unit expression, optionally
// multiplied by a constant factor.
type DerivedDef struct {
	Name    string   `yaml:"name" toml:"name"`
	Expr    string   `yaml:"expr" toml:"expr"`
	Factor  string   `yaml:"factor,omitempty" toml:"factor,omitempty"`
	Aliases []string `yaml:"aliases,omitempty" toml:"aliases,omitempty"`
	Metric  bool     `yaml:"metric,omitempty" toml:"metric,omitempty"`
}

// LoadDefinitions reads a definitions document in the given format, "yaml"
// or "toml", and returns a copy of base extended with its units. If base is
// nil, the default table is extended. Units are added in order, so derived
// unit expressions may refer to units defined earlier in the document.
func LoadDefinitions(r io.Reader, format string, base *Table) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions: %w", err)
	}
	var defs Definitions
	switch strings.ToLower(format) {
	case "yaml", "yml":
		d := yaml.NewDecoder(bytes.NewReader(data))
		d.KnownFields(true)
		if err = d.Decode(&defs); errors.Is(err, io.EOF) {
			// Empty document.
			err = nil
		}
	case "toml":
		d := toml.NewDecoder(bytes.NewReader(data))
		d.DisallowUnknownFields()
		err = d.Decode(&defs)
	default:
		return nil, fmt.Errorf("unknown definitions format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s definitions: %w", format, err)
	}
	if base == nil {
		base = Default()
	}
	t := base.Clone()
	if err := defs.addTo(t); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadDefinitionsFile reads a definitions file. The format is chosen by the
// file extension: .toml for TOML, anything else for YAML.
func LoadDefinitionsFile(path string, base *Table) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open definitions file %q: %w", path, err)
	}
	defer f.Close()
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		format = "toml"
	}
	t, err := LoadDefinitions(f, format, base)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return t, nil
}

func (defs *Definitions) addTo(t *Table) error {
	for _, u := range defs.Units {
		space, ok := ParseSpace(u.Space)
		if !ok {
			return &DefinitionError{Name: u.Name, Reason: "unknown space " + u.Space}
		}
		c, err := NewLinear(u.Name, space, u.Factor, u.Offset, u.Pi, u.Aliases, u.Metric)
		if err != nil {
			return err
		}
		if err := t.Add(Definition{Conversion: c}); err != nil {
			return fmt.Errorf("adding unit %q: %w", u.Name, err)
		}
	}
	for _, d := range defs.Derived {
		dims, err := Parse(d.Expr, WithTable(t))
		if err != nil {
			return fmt.Errorf("derived unit %q: %w", d.Name, err)
		}
		expand := dims.Units()
		if d.Factor != "" {
			c, err := NewConstant(d.Factor)
			if err != nil {
				return &DefinitionError{Name: d.Name, Reason: "invalid factor " + d.Factor}
			}
			expand = append(expand, Unit{Conversion: c, Power: 1})
		}
		def := &Derived{Name: d.Name, Aliases: d.Aliases, Metric: d.Metric, Expand: expand}
		if err := t.Add(Definition{Derived: def}); err != nil {
			return fmt.Errorf("adding derived unit %q: %w", d.Name, err)
		}
	}
	return nil
}
