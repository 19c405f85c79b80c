package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"gopkg.in/yaml.v3"
)

const (
	// CommonDir holds the shared documents, ProfileDir the per-profile
	// overlays. Both are resolved relative to the configuration root.
	CommonDir  = "common"
	ProfileDir = "profiles"
)

// Layers is the configuration state of one invocation: the merged common
// documents with the overlay for the profile the tool was invoked with.
// Missing or unreadable documents degrade to empty layers so that artifact
// rendering can always fall back to per-field defaults.
type Layers struct {
	// Profile is the name the overlay was loaded for, e.g. "dev".
	Profile string
	Common  Configuration
	Overlay Configuration
}

// LoadLayers reads every document under <root>/common in lexical order and
// merges them into the common layer, then loads <root>/profiles/<profile>.yaml
// as the overlay. Documents that cannot be read or parsed are skipped; the
// details only show up at raised verbosity.
func LoadLayers(ctx context.Context, root, profile string) *Layers {
	logger := logr.FromContextOrDiscard(ctx)

	layers := &Layers{
		Profile: profile,
		Common:  Configuration{},
		Overlay: Configuration{},
	}

	matches, err := filepath.Glob(filepath.Join(root, CommonDir, "*.yaml"))
	if err != nil {
		matches = nil
	}
	for _, match := range matches {
		doc, err := loadDocument(match)
		if err != nil {
			logger.V(1).Info("Skipping common document.", "path", match, "reason", err.Error())
			continue
		}
		layers.Common = Merge(layers.Common, doc)
	}

	overlayPath := filepath.Join(root, ProfileDir, profile+".yaml")
	overlay, err := loadDocument(overlayPath)
	if err != nil {
		logger.V(1).Info("No usable profile overlay, keys resolve from the common layer and defaults.", "path", overlayPath, "reason", err.Error())
		overlay = Configuration{}
	}
	layers.Overlay = overlay

	return layers
}

func loadDocument(path string) (Configuration, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc := Configuration{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return doc, nil
}

// Lookup resolves one key path against the layers: the profile overlay wins
// over the common layer, and def fills in when neither holds the path.
// Resolution is per key, not per document, so one artifact can mix sources.
func (l *Layers) Lookup(path string, def any) Resolved {
	if value, err := l.Overlay.GetByPath(path); err == nil {
		return Resolved{Value: value, Source: SourceProfile}
	}
	if value, err := l.Common.GetByPath(path); err == nil {
		return Resolved{Value: value, Source: SourceCommon}
	}
	return Resolved{Value: def, Source: SourceDefault}
}

// ValueProvenance reports the value each layer holds for the path.
func (l *Layers) ValueProvenance(path string) Provenance {
	provenance := Provenance{Path: path}
	if value, err := l.Overlay.GetByPath(path); err == nil {
		provenance.Profile = value
		provenance.ProfileSet = true
	}
	if value, err := l.Common.GetByPath(path); err == nil {
		provenance.Common = value
		provenance.CommonSet = true
	}
	return provenance
}

// Merged flattens the layers into a single view, the overlay winning per key.
// The layers themselves stay untouched.
func (l *Layers) Merged() Configuration {
	merged := Configuration{}
	Merge(merged, l.Common)
	Merge(merged, l.Overlay)
	return merged
}
