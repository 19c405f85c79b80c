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

package validate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	options "github.com/devai-lab/generate-config/cmd"
	"github.com/devai-lab/generate-config/pkg/config"
)

func DefaultOptions() *RawOptions {
	return &RawOptions{
		ConfigDir:  options.DefaultConfigDir,
		SchemaFile: filepath.Join(options.DefaultConfigDir, "schema.json"),
	}
}

func BindOptions(opts *RawOptions, cmd *cobra.Command) error {
	cmd.Flags().StringVar(&opts.ConfigDir, "config-dir", opts.ConfigDir, "Directory holding the common configuration documents and profile overlays.")
	cmd.Flags().StringVar(&opts.SchemaFile, "schema", opts.SchemaFile, "Path to the JSON schema merged configurations must conform to.")

	for _, flag := range []string{
		"schema",
	} {
		if err := cmd.MarkFlagFilename(flag); err != nil {
			return fmt.Errorf("failed to mark flag %q as a file: %w", flag, err)
		}
	}
	return nil
}

// RawOptions holds input values. An empty Profile selects every profile
// overlay present on disk.
type RawOptions struct {
	ConfigDir  string
	SchemaFile string
	Profile    string
}

func (o *RawOptions) Validate() (*ValidatedOptions, error) {
	for _, item := range []struct {
		flag  string
		name  string
		value *string
	}{
		{flag: "config-dir", name: "configuration directory", value: &o.ConfigDir},
		{flag: "schema", name: "schema file", value: &o.SchemaFile},
	} {
		if item.value == nil || *item.value == "" {
			return nil, fmt.Errorf("the %s must be provided with --%s", item.name, item.flag)
		}
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

func (o *ValidatedOptions) Complete() (*Options, error) {
	var profiles []string
	if o.Profile != "" {
		profiles = []string{o.Profile}
	} else {
		matches, err := filepath.Glob(filepath.Join(o.ConfigDir, config.ProfileDir, "*.yaml"))
		if err != nil {
			matches = nil
		}
		for _, match := range matches {
			profiles = append(profiles, strings.TrimSuffix(filepath.Base(match), ".yaml"))
		}
		if len(profiles) == 0 {
			// no overlays on disk, the common layer still deserves a check
			profiles = []string{options.DefaultProfile}
		}
	}

	return &Options{
		completedOptions: &completedOptions{
			ConfigDir:  o.ConfigDir,
			SchemaFile: o.SchemaFile,
			Profiles:   profiles,
		},
	}, nil
}

// completedOptions is a private wrapper that enforces a call of Complete() before validation can be invoked.
type completedOptions struct {
	ConfigDir  string
	SchemaFile string
	Profiles   []string
}

type Options struct {
	// Embed a private pointer that cannot be instantiated outside of this package.
	*completedOptions
}

func (opts *Options) ValidateConfiguration(ctx context.Context) error {
	logger := logr.FromContextOrDiscard(ctx)

	var allErrors error
	for _, profile := range opts.Profiles {
		layers := config.LoadLayers(ctx, opts.ConfigDir, profile)
		if err := config.ValidateSchema(opts.SchemaFile, layers.Merged()); err != nil {
			allErrors = errors.Join(allErrors, fmt.Errorf("profile %s: %w", profile, err))
			continue
		}
		logger.Info("Configuration is valid.", "profile", profile)
	}
	return allErrors
}
