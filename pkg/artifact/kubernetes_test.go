package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/yaml"

	"github.com/devai-lab/generate-config/pkg/config"
)

func TestRenderKubernetes(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "deploy/kubernetes/base")

	renderer := pinnedRenderer(testLayers(), root)
	assert.NoError(t, renderer.RenderKubernetes(t.Context()))

	var configMap corev1.ConfigMap
	assert.NoError(t, yaml.Unmarshal([]byte(readArtifact(t, root, configMapPath)), &configMap))

	assert.Equal(t, "v1", configMap.APIVersion)
	assert.Equal(t, "ConfigMap", configMap.Kind)
	assert.Equal(t, "devai-lab-config", configMap.Name)
	assert.Equal(t, "devai", configMap.Namespace)
	assert.Equal(t, map[string]string{
		"app.kubernetes.io/name":       "devai-lab",
		"app.kubernetes.io/managed-by": "generate-config",
	}, configMap.Labels)
	assert.Equal(t, map[string]string{
		"devai.io/profile":      "prod",
		"devai.io/generated-at": "2025-06-01T12:00:00Z",
	}, configMap.Annotations)
	assert.Equal(t, map[string]string{
		"APP_NAME":       "devai-lab",
		"APP_IMAGE":      "ghcr.io/devai-lab/workbench",
		"APP_TAG":        "latest",
		"CONTAINER_USER": "devai",
		"WORKSPACE_DIR":  "/workspace",
		"JUPYTER_HOST":   "0.0.0.0",
		"JUPYTER_PORT":   "8890",
		"SSH_PORT":       "2222",
		"GPU_ENABLED":    "true",
		"CPU_LIMIT":      "4",
		"MEMORY_LIMIT":   "8Gi",
	}, configMap.Data)
}

func TestRenderKubernetesNamespaceAndNaming(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "deploy/kubernetes/base")

	layers := &config.Layers{
		Profile: "prod",
		Common: config.Configuration{
			"app": map[string]any{
				"name": "DevAI Lab",
			},
			"kubernetes": map[string]any{
				"namespace": "devai-prod",
			},
		},
		Overlay: config.Configuration{},
	}
	renderer := pinnedRenderer(layers, root)
	assert.NoError(t, renderer.RenderKubernetes(t.Context()))

	var configMap corev1.ConfigMap
	assert.NoError(t, yaml.Unmarshal([]byte(readArtifact(t, root, configMapPath)), &configMap))
	assert.Equal(t, "devai-lab-config", configMap.Name)
	assert.Equal(t, "devai-prod", configMap.Namespace)
	assert.Equal(t, "devai-lab", configMap.Labels["app.kubernetes.io/name"])
}
