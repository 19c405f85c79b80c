// Package artifact renders the deployment artifacts of the devai-lab
// environment from layered configuration: the compose env file, per-cloud
// terraform variables, and the Kubernetes ConfigMap. Every artifact is a
// fixed, ordered list of fields bound to configuration key paths; rendering
// resolves each field independently against the layers.
package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/devai-lab/generate-config/pkg/config"
	"github.com/devai-lab/generate-config/pkg/utils"
)

// Kind names one artifact family the generator can render.
type Kind string

const (
	KindCompose    Kind = "compose"
	KindTerraform  Kind = "terraform"
	KindKubernetes Kind = "kubernetes"

	// TargetAll selects every kind.
	TargetAll = "all"
)

// AllKinds returns the kinds in generation order.
func AllKinds() []Kind {
	return []Kind{KindCompose, KindTerraform, KindKubernetes}
}

func validTargets() sets.Set[string] {
	targets := sets.New(TargetAll)
	for _, kind := range AllKinds() {
		targets.Insert(string(kind))
	}
	return targets
}

// ParseTarget maps the target argument onto the kinds to render.
func ParseTarget(target string) ([]Kind, error) {
	valid := validTargets()
	if !valid.Has(target) {
		return nil, fmt.Errorf("invalid target %q, must be one of %v", target, sets.List(valid))
	}
	if target == TargetAll {
		return AllKinds(), nil
	}
	return []Kind{Kind(target)}, nil
}

// Field binds one artifact entry to a configuration key path, with the
// literal fallback the artifact carries for it.
type Field struct {
	Name    string
	Path    string
	Default any
}

// Renderer writes deployment artifacts for one set of configuration layers.
// The clock and identity hooks keep outputs reproducible in tests; the cloud
// lister decides which terraform roots receive variables.
type Renderer struct {
	Layers *config.Layers

	// Root is the directory the deploy/ tree is resolved against. Commands
	// leave it at the working directory.
	Root string

	Now      func() time.Time
	Identity func() utils.Identity
	Clouds   CloudLister
}

func NewRenderer(layers *config.Layers, root string) *Renderer {
	return &Renderer{
		Layers:   layers,
		Root:     root,
		Now:      time.Now,
		Identity: utils.CurrentIdentity,
		Clouds:   &DeployDirClouds{Root: root},
	}
}

// Render writes the artifacts for the requested kinds in order, stopping at
// the first failure. Writes are independent: artifacts rendered before a
// failure stay in place.
func (r *Renderer) Render(ctx context.Context, kinds []Kind) error {
	for _, kind := range kinds {
		var err error
		switch kind {
		case KindCompose:
			err = r.RenderCompose(ctx)
		case KindTerraform:
			err = r.RenderTerraform(ctx)
		case KindKubernetes:
			err = r.RenderKubernetes(ctx)
		default:
			err = fmt.Errorf("unknown artifact kind %q", kind)
		}
		if err != nil {
			return fmt.Errorf("failed to render %s artifacts: %w", kind, err)
		}
	}
	return nil
}

// header is the comment block stamped onto line-oriented artifacts.
func (r *Renderer) header() string {
	return fmt.Sprintf("# Generated by generate-config. DO NOT EDIT.\n# profile: %s\n# generated-at: %s\n",
		r.Layers.Profile, r.timestamp())
}

func (r *Renderer) timestamp() string {
	return r.Now().UTC().Format(time.RFC3339)
}

// write places content at a path below Root, truncating any previous render.
// Destination directories are part of the repository layout and are not
// created here.
func (r *Renderer) write(ctx context.Context, rel string, content []byte) error {
	logger := logr.FromContextOrDiscard(ctx)
	path := filepath.Join(r.Root, rel)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return err
	}
	logger.V(1).Info("Wrote artifact.", "path", path)
	return nil
}
