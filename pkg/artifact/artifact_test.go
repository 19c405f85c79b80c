package artifact

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/devai-lab/generate-config/pkg/config"
	"github.com/devai-lab/generate-config/pkg/utils"
)

func TestParseTarget(t *testing.T) {
	for _, testCase := range []struct {
		name     string
		target   string
		expected []Kind
	}{
		{
			name:     "compose",
			target:   "compose",
			expected: []Kind{KindCompose},
		},
		{
			name:     "terraform",
			target:   "terraform",
			expected: []Kind{KindTerraform},
		},
		{
			name:     "kubernetes",
			target:   "kubernetes",
			expected: []Kind{KindKubernetes},
		},
		{
			name:     "all expands in generation order",
			target:   "all",
			expected: []Kind{KindCompose, KindTerraform, KindKubernetes},
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			kinds, err := ParseTarget(testCase.target)
			assert.NoError(t, err)
			assert.Equal(t, testCase.expected, kinds)
		})
	}

	t.Run("unknown target names itself and the accepted values", func(t *testing.T) {
		_, err := ParseTarget("helm")
		assert.Error(t, err)
		assert.ErrorContains(t, err, `invalid target "helm"`)
		for _, accepted := range []string{"all", "compose", "kubernetes", "terraform"} {
			assert.ErrorContains(t, err, accepted)
		}
	})
}

// testLayers is the configuration every rendering test starts from: some keys
// in common, some overridden by the profile, the rest left to defaults.
func testLayers() *config.Layers {
	return &config.Layers{
		Profile: "prod",
		Common: config.Configuration{
			"app": map[string]any{
				"name":  "devai-lab",
				"image": "ghcr.io/devai-lab/workbench",
			},
			"services": map[string]any{
				"jupyter": map[string]any{
					"host": "0.0.0.0",
					"port": 8890,
				},
			},
		},
		Overlay: config.Configuration{
			"resources": map[string]any{
				"cpu": 4,
				"gpu": map[string]any{
					"enabled": true,
				},
			},
		},
	}
}

// pinnedRenderer fixes the clock and identity so renders are reproducible.
func pinnedRenderer(layers *config.Layers, root string) *Renderer {
	renderer := NewRenderer(layers, root)
	renderer.Now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	renderer.Identity = func() utils.Identity {
		return utils.Identity{UID: 1000, GID: 1000}
	}
	return renderer
}

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}
}

func readArtifact(t *testing.T, root, rel string) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		t.Fatalf("failed to read %s: %v", rel, err)
	}
	return string(raw)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestRenderStopsAtFirstFailure(t *testing.T) {
	root := t.TempDir()
	// deploy/compose is missing, so the first artifact fails and nothing
	// after it is written.
	mkdirs(t, root, "deploy/terraform/aws", "deploy/kubernetes/base")

	renderer := pinnedRenderer(testLayers(), root)
	err := renderer.Render(t.Context(), AllKinds())
	assert.Error(t, err)
	assert.ErrorContains(t, err, "compose")

	_, statErr := os.Stat(filepath.Join(root, "deploy/terraform/aws/terraform.tfvars"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRenderUnknownKind(t *testing.T) {
	renderer := pinnedRenderer(testLayers(), t.TempDir())
	err := renderer.Render(t.Context(), []Kind{Kind("helm")})
	assert.ErrorContains(t, err, "unknown artifact kind")
}

func stripTimestamps(content string) string {
	var kept []string
	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(line, "generated-at") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func TestRenderIsIdempotent(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "deploy/compose", "deploy/terraform/aws", "deploy/kubernetes/base")

	artifacts := []string{
		"deploy/compose/.env",
		"deploy/terraform/aws/terraform.tfvars",
		"deploy/kubernetes/base/configmap.yaml",
	}

	renderer := pinnedRenderer(testLayers(), root)
	assert.NoError(t, renderer.Render(t.Context(), AllKinds()))
	first := map[string]string{}
	for _, rel := range artifacts {
		first[rel] = readArtifact(t, root, rel)
	}

	// same clock, same bytes
	assert.NoError(t, renderer.Render(t.Context(), AllKinds()))
	for _, rel := range artifacts {
		assert.Equal(t, first[rel], readArtifact(t, root, rel), rel)
	}

	// a later clock only moves the embedded timestamp
	renderer.Now = func() time.Time {
		return time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	}
	assert.NoError(t, renderer.Render(t.Context(), AllKinds()))
	for _, rel := range artifacts {
		second := readArtifact(t, root, rel)
		assert.NotEqual(t, first[rel], second, rel)
		assert.Equal(t, stripTimestamps(first[rel]), stripTimestamps(second), rel)
	}
}
