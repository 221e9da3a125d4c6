package cli

import (
	"fmt"
	"os"

	"github.com/birdie-ai/golibs/slog"
	"github.com/spf13/cobra"

	"github.com/dkrantsberg/camlquery/caml"
	"github.com/dkrantsberg/camlquery/filter"
	"github.com/dkrantsberg/camlquery/model"
)

// TranslateOptions holds flags for the translate command.
type TranslateOptions struct {
	*RootOptions
	ModelsPath string
	ModelName  string
	FilterPath string
	Output     string
	Fragment   string
}

// Fragment selectors for partial documents.
var validFragments = []string{"view", "where", "fields", "order", "limit"}

// NewTranslateCommand creates the translate command.
func NewTranslateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TranslateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate a JSON filter into a CAML view document",
		Long: `Translate a JSON filter file into a CAML view document using the
field metadata of one model from a YAML definition file.

With --fragment, only the selected part of the document is emitted
(where, fields, order or limit); the default is the full view.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.ModelsPath, "models", "m", "", "path to the YAML model definition file (required)")
	cmd.Flags().StringVarP(&opts.ModelName, "name", "n", "", "model name to translate against (required)")
	cmd.Flags().StringVarP(&opts.FilterPath, "filter", "f", "", "path to the JSON filter file (default: empty filter)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().StringVar(&opts.Fragment, "fragment", "view", "document fragment to emit (view|where|fields|order|limit)")
	_ = cmd.MarkFlagRequired("models")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runTranslate(opts *TranslateOptions, cmd *cobra.Command) error {
	if !isValidFragment(opts.Fragment) {
		return WrapExitError(ExitCommandError,
			fmt.Sprintf("invalid fragment %q: must be one of %v", opts.Fragment, validFragments), nil)
	}

	registry, err := LoadModels(opts.ModelsPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading models", err)
	}
	md, ok := registry.Lookup(opts.ModelName)
	if !ok {
		return WrapExitError(ExitFailure,
			fmt.Sprintf("model %q not found in %s (have %v)", opts.ModelName, opts.ModelsPath, registry.Names()), nil)
	}

	var f filter.Filter
	if opts.FilterPath != "" {
		f, err = LoadFilter(opts.FilterPath)
		if err != nil {
			return WrapExitError(ExitFailure, "loading filter", err)
		}
	}

	out, err := translateFragment(md, f, opts.Fragment)
	if err != nil {
		return WrapExitError(ExitFailure, "translating filter", err)
	}
	slog.Debug("translated filter", "model", opts.ModelName, "fragment", opts.Fragment, "bytes", len(out))

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(out), 0o644); err != nil {
			return WrapExitError(ExitCommandError, "writing output file", err)
		}
		return nil
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Document(out)
}

func translateFragment(md *model.Metadata, f filter.Filter, fragment string) (string, error) {
	switch fragment {
	case "where":
		return caml.CompileWhere(md, f.Where)
	case "fields":
		return caml.CompileViewFields(md, caml.Projection(md, f)), nil
	case "order":
		return caml.CompileOrderBy(md, f.Order)
	case "limit":
		return caml.CompileRowLimit(f.Limit), nil
	default: // "view"
		return caml.Translate(md, f)
	}
}

func isValidFragment(fragment string) bool {
	for _, f := range validFragments {
		if f == fragment {
			return true
		}
	}
	return false
}
