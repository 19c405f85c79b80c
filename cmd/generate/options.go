package generate

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	options "github.com/devai-lab/generate-config/cmd"
	"github.com/devai-lab/generate-config/pkg/artifact"
)

func DefaultGenerationOptions() *RawGenerationOptions {
	return &RawGenerationOptions{
		Options: options.DefaultOptions(),
		Target:  artifact.TargetAll,
		Root:    ".",
	}
}

func BindGenerationOptions(opts *RawGenerationOptions, cmd *cobra.Command) error {
	if err := options.BindOptions(opts.Options, cmd); err != nil {
		return fmt.Errorf("failed to bind options: %w", err)
	}
	return nil
}

// RawGenerationOptions holds input values.
type RawGenerationOptions struct {
	Options *options.RawOptions
	Target  string

	// Root anchors the deploy tree. Commands leave it at the working
	// directory; tests point it at scratch directories.
	Root string
}

func (o *RawGenerationOptions) Validate() (*ValidatedGenerationOptions, error) {
	validated, err := o.Options.Validate()
	if err != nil {
		return nil, fmt.Errorf("validation failed for raw options: %w", err)
	}

	kinds, err := artifact.ParseTarget(o.Target)
	if err != nil {
		return nil, err
	}

	return &ValidatedGenerationOptions{
		validatedGenerationOptions: &validatedGenerationOptions{
			RawGenerationOptions: o,
			ValidatedOptions:     validated,
			Kinds:                kinds,
		},
	}, nil
}

// validatedGenerationOptions is a private wrapper that enforces a call of Validate() before Complete() can be invoked.
type validatedGenerationOptions struct {
	*RawGenerationOptions
	*options.ValidatedOptions

	Kinds []artifact.Kind
}

type ValidatedGenerationOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package.
	*validatedGenerationOptions
}

func (o *ValidatedGenerationOptions) Complete(ctx context.Context) (*GenerationOptions, error) {
	completed, err := o.ValidatedOptions.Complete(ctx)
	if err != nil {
		return nil, err
	}

	return &GenerationOptions{
		completedGenerationOptions: &completedGenerationOptions{
			Renderer: artifact.NewRenderer(completed.Layers, o.Root),
			Kinds:    o.Kinds,
		},
	}, nil
}

// completedGenerationOptions is a private wrapper that enforces a call of Complete() before artifact generation can be invoked.
type completedGenerationOptions struct {
	Renderer *artifact.Renderer
	Kinds    []artifact.Kind
}

type GenerationOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package.
	*completedGenerationOptions
}

func (opts *GenerationOptions) GenerateArtifacts(ctx context.Context) error {
	return opts.Renderer.Render(ctx, opts.Kinds)
}
