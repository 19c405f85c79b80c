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

package options

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devai-lab/generate-config/pkg/config"
)

const (
	// DefaultProfile is the overlay assumed when no profile argument is given.
	DefaultProfile = "dev"

	// DefaultConfigDir holds the common configuration documents and profile overlays.
	DefaultConfigDir = "config"
)

func DefaultOptions() *RawOptions {
	return &RawOptions{
		ConfigDir: DefaultConfigDir,
		Profile:   DefaultProfile,
	}
}

func BindOptions(opts *RawOptions, cmd *cobra.Command) error {
	cmd.Flags().StringVar(&opts.ConfigDir, "config-dir", opts.ConfigDir, "Directory holding the common configuration documents and profile overlays.")

	for _, flag := range []string{
		"config-dir",
	} {
		if err := cmd.MarkFlagDirname(flag); err != nil {
			return fmt.Errorf("failed to mark flag %q as a directory: %w", flag, err)
		}
	}
	return nil
}

// RawOptions holds input values.
type RawOptions struct {
	ConfigDir string
	Profile   string
}

func (o *RawOptions) Validate() (*ValidatedOptions, error) {
	for _, item := range []struct {
		flag  string
		name  string
		value *string
	}{
		{flag: "config-dir", name: "configuration directory", value: &o.ConfigDir},
	} {
		if item.value == nil || *item.value == "" {
			return nil, fmt.Errorf("the %s must be provided with --%s", item.name, item.flag)
		}
	}

	if o.Profile == "" {
		return nil, fmt.Errorf("the profile must not be empty")
	}

	return &ValidatedOptions{
		validatedOptions: &validatedOptions{
			RawOptions: o,
		},
	}, nil
}

// validatedOptions is a private wrapper that enforces a call of Validate() before Complete() can be invoked.
type validatedOptions struct {
	*RawOptions
}

type ValidatedOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package.
	*validatedOptions
}

// Complete loads the configuration layers. Loading degrades to empty layers
// when documents are missing or unreadable, so resolution can always proceed
// from built-in defaults.
func (o *ValidatedOptions) Complete(ctx context.Context) (*Options, error) {
	return &Options{
		completedOptions: &completedOptions{
			Layers: config.LoadLayers(ctx, o.ConfigDir, o.Profile),
		},
	}, nil
}

// completedOptions is a private wrapper that enforces a call of Complete() before the layers can be used.
type completedOptions struct {
	Layers *config.Layers
}

type Options struct {
	// Embed a private pointer that cannot be instantiated outside of this package.
	*completedOptions
}
