package generate

import (
	"context"

	"github.com/spf13/cobra"
)

// NewCommand builds the root command. Both positional arguments are
// optional: the target defaults to all artifact kinds, the profile to dev.
func NewCommand() (*cobra.Command, error) {
	opts := DefaultGenerationOptions()
	cmd := &cobra.Command{
		Use:   "generate-config [target] [profile]",
		Short: "Generate deployment artifacts from layered configuration",
		Long: `generate-config renders the deployment artifacts of the devai-lab
environment from layered YAML configuration.

The target selects what to render: compose, terraform, kubernetes, or all.
The profile selects the overlay stacked on top of the common configuration
documents; keys missing from both fall back to built-in defaults.`,
		Args:             cobra.MaximumNArgs(2),
		SilenceUsage:     true,
		SilenceErrors:    true,
		TraverseChildren: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Target = args[0]
			}
			if len(args) > 1 {
				opts.Options.Profile = args[1]
			}
			return generate(cmd.Context(), opts)
		},
	}
	if err := BindGenerationOptions(opts, cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

func generate(ctx context.Context, opts *RawGenerationOptions) error {
	validated, err := opts.Validate()
	if err != nil {
		return err
	}
	completed, err := validated.Complete(ctx)
	if err != nil {
		return err
	}
	return completed.GenerateArtifacts(ctx)
}
