package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/zephyrtronium/units"
)

// defsEnv names the environment variable that supplies a definitions file
// when --defs is not given.
const defsEnv = "UNITS_DEFS"

var rootFlags struct {
	debug      bool
	dimensions bool
	prec       uint
	format     string
	group      bool
	echo       bool
	defs       string
}

var rootCmd = &cobra.Command{
	Use:   "units [flags] <query>...",
	Short: "Convert values between units",
	Long: `Units converts values between unit expressions.

A query is an optional number, a unit expression, a separator, and another
unit expression, e.g. "10 km/h => mph". The separators are "=>", "->", "to",
and "in". Unit expressions combine units with *, /, ^, and parentheses.
Names containing spaces are written with _ or -, e.g. "nautical_mile".

With no arguments, queries are read from stdin, one per line. Put "--" before
queries that start with a negative number.`,
	Args:          cobra.ArbitraryArgs,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runQueries,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.defs, "defs", "", "unit definitions file, YAML or TOML (default $"+defsEnv+")")
	rootCmd.Flags().BoolVar(&rootFlags.debug, "debug", false, "show the conversion steps")
	rootCmd.Flags().BoolVarP(&rootFlags.dimensions, "dimensions", "d", false, "print the dimensions of each query")
	rootCmd.Flags().UintVarP(&rootFlags.prec, "prec", "p", units.DefaultPrec, "precision of calculations in bits")
	rootCmd.Flags().StringVar(&rootFlags.format, "fmt", "%g", "result formatting verb")
	rootCmd.Flags().BoolVar(&rootFlags.group, "group", false, "group digits of results by thousands")
	rootCmd.Flags().BoolVar(&rootFlags.echo, "echo", false, "print parse trees")
}

// loadTable returns the unit table, extended by the definitions file named
// by --defs or the environment.
func loadTable(cmd *cobra.Command) (*units.Table, error) {
	path := rootFlags.defs
	if !cmd.Flags().Changed("defs") {
		if v := os.Getenv(defsEnv); v != "" {
			path = v
		}
	}
	if path == "" {
		return units.Default(), nil
	}
	return units.LoadDefinitionsFile(path, nil)
}

func runQueries(cmd *cobra.Command, args []string) error {
	if rootFlags.prec == 0 {
		return fmt.Errorf("precision must be positive")
	}
	tab, err := loadTable(cmd)
	if err != nil {
		return err
	}
	queries := args
	if len(queries) == 0 {
		queries, err = readQueries(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read queries: %w", err)
		}
	}

	level := slog.LevelInfo
	if rootFlags.debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	opts := []units.ConvertOption{units.Prec(rootFlags.prec)}
	if rootFlags.debug {
		opts = append(opts, units.Trace(log))
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, q := range queries {
		if err := runQuery(out, q, tab, opts); err != nil {
			log.Error("query failed", slog.String("query", q), slog.Any("err", err))
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d queries failed", failed, len(queries))
	}
	return nil
}

func runQuery(w io.Writer, src string, tab *units.Table, opts []units.ConvertOption) error {
	if rootFlags.echo {
		q, err := units.ParseQuery(src, rootFlags.prec)
		if err != nil {
			return err
		}
		from, err := units.Explain(q.From, units.WithTable(tab))
		if err != nil {
			return err
		}
		to, err := units.Explain(q.To, units.WithTable(tab))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s => %s\n", from, to)
	}
	r, err := units.Eval(src, tab, opts...)
	if err != nil {
		return err
	}
	if rootFlags.dimensions {
		fmt.Fprintf(w, "%+v\n", r.From.Simplify())
	}
	fmt.Fprintf(w, "%s %s => %s %s\n", formatValue(r.Query.Value), r.Query.From, formatValue(r.Value), r.Query.To)
	return nil
}

// formatValue formats a number with the --fmt verb, or with grouped digits
// if --group is set.
func formatValue(x *big.Float) string {
	if rootFlags.group {
		f, _ := x.Float64()
		p := message.NewPrinter(language.English)
		return p.Sprint(number.Decimal(f, number.MaxFractionDigits(6)))
	}
	return fmt.Sprintf(rootFlags.format, x)
}

// readQueries reads non-empty lines.
func readQueries(r io.Reader) ([]string, error) {
	var qs []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if l := strings.TrimSpace(s.Text()); l != "" {
			qs = append(qs, l)
		}
	}
	return qs, s.Err()
}
