// Copyright 2025 Microsoft Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package render

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/util/sets"

	options "github.com/devai-lab/generate-config/cmd"
	output "github.com/devai-lab/generate-config/internal/utils"
	"github.com/devai-lab/generate-config/pkg/config"
)

func DefaultOptions() *RawOptions {
	return &RawOptions{
		Options: options.DefaultOptions(),
		Output:  "-",
		Format:  output.FormatYAML,
	}
}

func BindOptions(opts *RawOptions, cmd *cobra.Command) error {
	if err := options.BindOptions(opts.Options, cmd); err != nil {
		return fmt.Errorf("failed to bind options: %w", err)
	}
	cmd.Flags().StringVar(&opts.Output, "output", opts.Output, "Output file to render to. Set to '-' for stdout.")
	cmd.Flags().StringVar(&opts.Format, "format", opts.Format, "Encoding for the rendered configuration (yaml, json).")

	for _, flag := range []string{
		"output",
	} {
		if err := cmd.MarkFlagFilename(flag); err != nil {
			return fmt.Errorf("failed to mark flag %q as a file: %w", flag, err)
		}
	}
	return nil
}

// RawOptions holds input values.
type RawOptions struct {
	Options *options.RawOptions
	Output  string
	Format  string
}

func (o *RawOptions) Validate() (*ValidatedOptions, error) {
	validated, err := o.Options.Validate()
	if err != nil {
		return nil, fmt.Errorf("validation failed for raw options: %w", err)
	}

	for _, item := range []struct {
		flag  string
		name  string
		value *string
	}{
		{flag: "output", name: "output destination", value: &o.Output},
	} {
		if item.value == nil || *item.value == "" {
			return nil, fmt.Errorf("the %s must be provided with --%s", item.name, item.flag)
		}
	}

	validFormats := sets.New(output.FormatYAML, output.FormatJSON)
	if !validFormats.Has(o.Format) {
		return nil, fmt.Errorf("invalid format %q, must be one of %v", o.Format, sets.List(validFormats))
	}

	return &ValidatedOptions{
		validatedOptions: &validatedOptions{
			RawOptions:       o,
			ValidatedOptions: validated,
		},
	}, nil
}

// validatedOptions is a private wrapper that enforces a call of Validate() before Complete() can be invoked.
type validatedOptions struct {
	*RawOptions
	*options.ValidatedOptions
}

type ValidatedOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package.
	*validatedOptions
}

func (o *ValidatedOptions) Complete(ctx context.Context) (*Options, error) {
	completed, err := o.ValidatedOptions.Complete(ctx)
	if err != nil {
		return nil, err
	}

	var out io.WriteCloser
	if o.Output == "-" {
		out = os.Stdout
	} else {
		file, err := os.Create(o.Output)
		if err != nil {
			return nil, fmt.Errorf("failed to open output file: %w", err)
		}
		out = file
	}

	return &Options{
		completedOptions: &completedOptions{
			Layers: completed.Layers,
			Format: o.Format,
			Output: out,
		},
	}, nil
}

// completedOptions is a private wrapper that enforces a call of Complete() before rendering can be invoked.
type completedOptions struct {
	Layers *config.Layers
	Format string
	Output io.WriteCloser
}

type Options struct {
	// Embed a private pointer that cannot be instantiated outside of this package.
	*completedOptions
}

func (opts *Options) RenderConfiguration(ctx context.Context) error {
	encoded, err := output.Format(opts.Layers.Merged(), opts.Format)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	if _, err := fmt.Fprint(opts.Output, encoded); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	if err := opts.Output.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
