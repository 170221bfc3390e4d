package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ickshonpe/taffy/pkg/layout"
	"github.com/ickshonpe/taffy/pkg/text"
)

// newComputeCmd creates the compute command, which lays out a YAML
// tree file and prints the resulting geometry.
func newComputeCmd() *cobra.Command {
	var (
		width      float64
		height     float64
		fontPath   string
		fontSize   float64
		noRounding bool
	)

	cmd := &cobra.Command{
		Use:   "compute <treefile>",
		Short: "Compute the layout of a YAML node tree",
		Long: `Compute reads a node tree from a YAML file, runs the flexbox
layout algorithm against the given viewport, and prints one line per
node with its computed position and size.

Positions are relative to the parent's content box. Text nodes are
measured with the configured font; without one, a per-character
estimate is used.`,
		Example: `  # Lay out a tree in an 800x600 viewport
  taffy compute --width 800 --height 600 examples/header-body.yaml

  # Size the tree to its content
  taffy compute examples/header-body.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			measurer := text.NewMeasurer(fontPath, fontSize)
			tree, err := loadTree(args[0], measurer)
			if err != nil {
				return err
			}
			if noRounding {
				tree.arena.DisableRounding()
			}

			available := layout.AvailableSize{
				Width:  layout.MaxContent(),
				Height: layout.MaxContent(),
			}
			if cmd.Flags().Changed("width") {
				available.Width = layout.Definite(width)
			}
			if cmd.Flags().Changed("height") {
				available.Height = layout.Definite(height)
			}

			start := time.Now()
			if err := tree.arena.ComputeLayout(tree.root, available); err != nil {
				return fmt.Errorf("compute layout: %w", err)
			}
			logger.Debugf("laid out tree in %s", time.Since(start).Round(time.Microsecond))

			return printLayout(cmd.OutOrStdout(), tree, tree.root, 0)
		},
	}

	cmd.Flags().Float64Var(&width, "width", 0, "viewport width in points (content-sized if unset)")
	cmd.Flags().Float64Var(&height, "height", 0, "viewport height in points (content-sized if unset)")
	cmd.Flags().StringVar(&fontPath, "font", "", "TrueType font file for text measurement")
	cmd.Flags().Float64Var(&fontSize, "font-size", 14, "font size in points")
	cmd.Flags().BoolVar(&noRounding, "no-rounding", false, "keep fractional pixel values")

	return cmd
}

// printLayout writes one line per node, indented by depth.
func printLayout(w io.Writer, t *tree, node layout.NodeID, depth int) error {
	l, err := t.arena.Layout(node)
	if err != nil {
		return err
	}
	name := t.names[node]
	fmt.Fprintf(w, "%s%s: %gx%g @ (%g, %g)\n",
		strings.Repeat("  ", depth), name, l.Size.Width, l.Size.Height, l.Location.X, l.Location.Y)

	children, err := t.arena.Children(node)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := printLayout(w, t, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
