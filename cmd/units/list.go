package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/units"
)

var listFlags struct {
	output string
}

var listCmd = &cobra.Command{
	Use:   "list [space]",
	Short: "List known units",
	Long: `List the units, derived units, and shorthands known to units, optionally
only those measuring a given space such as "length" or "time".

Examples:
  # All units as a table
  units list

  # Units of time as YAML
  units list time -o yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: listUnits,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listFlags.output, "output", "o", "text", "output format: text, yaml, toml")
}

// catalog is the document written by list.
type catalog struct {
	Units []entry `yaml:"units" toml:"units"`
}

type entry struct {
	Name       string   `yaml:"name" toml:"name"`
	Kind       string   `yaml:"kind" toml:"kind"`
	Dimensions string   `yaml:"dimensions" toml:"dimensions"`
	Aliases    []string `yaml:"aliases,omitempty" toml:"aliases,omitempty"`
	Metric     bool     `yaml:"metric,omitempty" toml:"metric,omitempty"`
}

func listUnits(cmd *cobra.Command, args []string) error {
	tab, err := loadTable(cmd)
	if err != nil {
		return err
	}
	var space units.Space
	if len(args) > 0 {
		s, ok := units.ParseSpace(args[0])
		if !ok {
			return fmt.Errorf("unknown space %q", args[0])
		}
		space = s
	}
	c, err := buildCatalog(tab, space)
	if err != nil {
		return err
	}
	return writeCatalog(cmd.OutOrStdout(), c, listFlags.output)
}

// buildCatalog describes each definition in the table. If space is not
// empty, only definitions with a nonzero power of that space are included.
func buildCatalog(tab *units.Table, space units.Space) (*catalog, error) {
	var c catalog
	for _, d := range tab.Definitions() {
		name := strings.ReplaceAll(d.Name(), " ", "_")
		dims, err := units.Parse(name, units.WithTable(tab), units.NoPrefixes())
		if err != nil {
			return nil, fmt.Errorf("describing %s: %w", d.Name(), err)
		}
		if space != "" && dims.Spaces()[space] == 0 {
			continue
		}
		e := entry{
			Name:       d.Name(),
			Dimensions: fmt.Sprintf("%+v", dims.Simplify()),
			Aliases:    d.Aliases(),
			Metric:     d.Metric(),
		}
		switch {
		case d.Conversion != nil:
			e.Kind = "unit"
		case d.Derived != nil:
			e.Kind = "derived"
		default:
			e.Kind = "shorthand"
		}
		c.Units = append(c.Units, e)
	}
	return &c, nil
}

func writeCatalog(w io.Writer, c *catalog, format string) error {
	switch format {
	case "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tKIND\tDIMENSIONS\tALIASES")
		for _, e := range c.Units {
			name := e.Name
			if e.Metric {
				name += "*"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, e.Kind, e.Dimensions, strings.Join(e.Aliases, ", "))
		}
		return tw.Flush()
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case "toml":
		if err := toml.NewEncoder(w).Encode(c); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
