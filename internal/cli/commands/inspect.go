package commands

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
	"github.com/katalvlaran/gridkit/internal/cli/config"
	"github.com/katalvlaran/gridkit/internal/ctxlog"
	"github.com/katalvlaran/gridkit/internal/tilegen"
	"github.com/katalvlaran/gridkit/tile"
)

// dimmed stands in for cells outside the highlighted variant when color is off.
const dimmed = '·'

type inspectOptions struct {
	vocab      string
	highlight  string
	components bool
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	var opts inspectOptions

	cmd := &cobra.Command{
		Use:   "inspect <grid-file>",
		Short: "Summarize a grid file against a vocabulary",
		Long: `Inspect parses a grid file with a vocabulary and prints one row per
variant present: its character, cell count, first coordinate in row-major
order and, with --components, how many orthogonally connected regions it forms.

With --highlight the grid is echoed with one variant emphasized.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.vocab, "vocab", "", "vocabulary file (required)")
	cmd.Flags().StringVar(&opts.highlight, "highlight", "", "variant name to emphasize in the echoed grid")
	cmd.Flags().BoolVar(&opts.components, "components", false, "count connected regions per variant")
	_ = cmd.MarkFlagRequired("vocab")

	return cmd
}

func runInspect(cmd *cobra.Command, path string, opts inspectOptions) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := ctxlog.FromContext(ctx)

	v, err := tilegen.Load(opts.vocab)
	if err != nil {
		return err
	}
	reg, err := v.Registry()
	if err != nil {
		return err
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	g, err := reg.ParseGrid(string(text))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("parsed grid", "file", path, "width", g.Width(), "height", g.Height())

	var regions map[tilegen.Symbol]int
	if opts.components {
		regions = countRegions(g)
	}
	out := cmd.OutOrStdout()
	if err := renderSummary(out, reg, g, regions); err != nil {
		return err
	}

	if opts.highlight == "" {
		return nil
	}
	if !declares(v, opts.highlight) {
		return fmt.Errorf("unknown variant %q in %s", opts.highlight, v.Source)
	}
	mark := color.New(color.FgRed, color.Bold)
	if cfg.Color {
		mark.EnableColor()
	} else {
		mark.DisableColor()
	}
	return renderHighlight(out, reg, g, opts.highlight, mark, cfg.Color)
}

// symbols lists the values present in g: declared entries in declaration
// order, then digit values in ascending order.
func symbols(reg *tile.Vocabulary[tilegen.Symbol], index map[tilegen.Symbol][]grid.Coord) []tilegen.Symbol {
	entries := reg.Entries()
	rank := func(s tilegen.Symbol) int {
		if s.Digit >= 0 {
			return len(entries) + s.Digit
		}
		return slices.IndexFunc(entries, func(e tile.Entry[tilegen.Symbol]) bool { return e.Variant == s })
	}
	out := make([]tilegen.Symbol, 0, len(index))
	for s := range index {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b tilegen.Symbol) int { return rank(a) - rank(b) })
	return out
}

func countRegions(g *grid.Grid[tilegen.Symbol]) map[tilegen.Symbol]int {
	gg := gridgraph.Build(g, grid.Orthogonal, gridgraph.SameValue[tilegen.Symbol](struct{}{}),
		gridgraph.WithDirected(false))
	regions := make(map[tilegen.Symbol]int)
	for _, comp := range gg.Components() {
		s, _ := g.Get(comp[0].X, comp[0].Y)
		regions[s]++
	}
	return regions
}

func renderSummary(w io.Writer, reg *tile.Vocabulary[tilegen.Symbol], g *grid.Grid[tilegen.Symbol], regions map[tilegen.Symbol]int) error {
	index := grid.BuildLookup(g)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	header := table.Row{"Variant", "Char", "Count", "First"}
	if regions != nil {
		header = append(header, "Regions")
	}
	t.AppendHeader(header)

	for _, s := range symbols(reg, index) {
		r, err := reg.Format(s)
		if err != nil {
			return err
		}
		row := table.Row{s.String(), string(r), len(index[s]), index[s][0].String()}
		if regions != nil {
			row = append(row, regions[s])
		}
		t.AppendRow(row)
	}
	t.AppendFooter(table.Row{"", "", g.Len(), fmt.Sprintf("%dx%d", g.Width(), g.Height())})
	t.Render()
	return nil
}

func declares(v *tilegen.Vocab, name string) bool {
	if v.Digit == name {
		return true
	}
	for _, vr := range v.Variants {
		if vr.Name == name {
			return true
		}
	}
	return false
}

func renderHighlight(w io.Writer, reg *tile.Vocabulary[tilegen.Symbol], g *grid.Grid[tilegen.Symbol], name string, mark *color.Color, colored bool) error {
	var sb strings.Builder
	for y, row := range g.Rows() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, s := range row {
			r, err := reg.Format(s)
			if err != nil {
				return err
			}
			switch {
			case s.Name == name:
				sb.WriteString(mark.Sprint(string(r)))
			case colored:
				sb.WriteRune(r)
			default:
				sb.WriteRune(dimmed)
			}
		}
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}
