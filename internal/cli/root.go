// Package cli implements the camlq command tree.
package cli

import (
	"fmt"

	"github.com/birdie-ai/golibs/slog"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "xml" | "json"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"xml", "json"}

// NewRootCommand creates the root command for the camlq CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "camlq",
		Short: "Translate generic query filters into CAML view documents",
		Long: `camlq compiles JSON-shaped query filters (fields/where/order/limit)
into CAML view documents for a document-list store, using per-model
field metadata loaded from a YAML definition file.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			// Diagnostics go to stderr so they never corrupt the
			// document written to stdout.
			return slog.Configure(slog.Config{Level: level, Format: slog.FormatText})
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "xml", "output format (xml|json)")

	cmd.AddCommand(NewTranslateCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
