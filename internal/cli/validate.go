package cli

import (
	"fmt"

	"github.com/birdie-ai/golibs/slog"
	"github.com/spf13/cobra"
)

// ValidationSummary reports what a model definition file contains.
type ValidationSummary struct {
	Models int `json:"models"`
	Fields int `json:"fields"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <models.yaml>",
		Short: "Validate a YAML model definition file",
		Long: `Validate a YAML model definition file without translating anything.

Every declared type, CAML type override and identity setting is checked
the same way model registration checks them at runtime.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	registry, err := LoadModels(path)
	if err != nil {
		return WrapExitError(ExitFailure, "invalid model definition", err)
	}

	summary := ValidationSummary{Models: len(registry.Names())}
	for _, name := range registry.Names() {
		md, _ := registry.Lookup(name)
		summary.Fields += len(md.FieldNames())
		slog.Debug("validated model", "name", name, "fields", len(md.FieldNames()))
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return formatter.Info(summary)
	}
	return formatter.Info(fmt.Sprintf("OK: %d model(s), %d field(s)", summary.Models, summary.Fields))
}
