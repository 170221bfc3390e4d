package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the taffy CLI and returns an error if any command
// fails. Logging defaults to info level; --verbose raises it to debug.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "taffy",
		Short:        "Taffy computes flexbox layouts for node trees",
		Long:         `Taffy is a flexbox layout engine. The CLI loads a node tree from a YAML file, computes its layout against a viewport, and prints the position and size of every node.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("taffy %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newComputeCmd())

	return root.ExecuteContext(context.Background())
}
