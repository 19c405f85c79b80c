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

package explain

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	options "github.com/devai-lab/generate-config/cmd"
	"github.com/devai-lab/generate-config/pkg/config"
)

func DefaultOptions() *RawOptions {
	return &RawOptions{
		Options: options.DefaultOptions(),
	}
}

func BindOptions(opts *RawOptions, cmd *cobra.Command) error {
	if err := options.BindOptions(opts.Options, cmd); err != nil {
		return fmt.Errorf("failed to bind options: %w", err)
	}
	cmd.Flags().StringVar(&opts.Path, "path", opts.Path, "Dotted path of the configuration key needing explanation.")
	return nil
}

// RawOptions holds input values.
type RawOptions struct {
	Options *options.RawOptions

	Path string
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
		{flag: "path", name: "path", value: &o.Path},
	} {
		if item.value == nil || *item.value == "" {
			return nil, fmt.Errorf("the %s must be provided with --%s", item.name, item.flag)
		}
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

	return &Options{
		completedOptions: &completedOptions{
			Layers: completed.Layers,
			Path:   o.Path,
		},
	}, nil
}

// completedOptions is a private wrapper that enforces a call of Complete() before explanation can be invoked.
type completedOptions struct {
	Layers *config.Layers
	Path   string
}

type Options struct {
	// Embed a private pointer that cannot be instantiated outside of this package.
	*completedOptions
}

func (opts *Options) ExplainConfiguration(ctx context.Context) error {
	provenance := opts.Layers.ValueProvenance(opts.Path)

	switch {
	case provenance.ProfileSet:
		fmt.Println("Resulting Value:")
		fmt.Printf("%s: %#v\n", opts.Path, provenance.Profile)
	case provenance.CommonSet:
		fmt.Println("Resulting Value:")
		fmt.Printf("%s: %#v\n", opts.Path, provenance.Common)
	default:
		fmt.Printf("No layer provides %s, artifacts fall back to their built-in defaults.\n", opts.Path)
	}
	fmt.Println()

	fmt.Println("Defaults and Overrides:")
	if provenance.CommonSet {
		fmt.Printf("common.%s: %#v\n", opts.Path, provenance.Common)
	}
	if provenance.ProfileSet {
		fmt.Printf("profiles[%s].%s: %#v\n", opts.Layers.Profile, opts.Path, provenance.Profile)
	}
	return nil
}
