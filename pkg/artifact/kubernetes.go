package artifact

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"

	"github.com/devai-lab/generate-config/pkg/naming"
	"github.com/devai-lab/generate-config/pkg/utils"
)

const configMapPath = "deploy/kubernetes/base/configmap.yaml"

// configMapFields is the data block of the generated ConfigMap. Memory is
// handled separately because the artifact carries it in Kubernetes quantity
// notation rather than as a bare number.
func configMapFields() []Field {
	return []Field{
		{Name: "APP_NAME", Path: "app.name", Default: "devai"},
		{Name: "APP_IMAGE", Path: "app.image", Default: "devai/workbench"},
		{Name: "APP_TAG", Path: "app.tag", Default: "latest"},
		{Name: "CONTAINER_USER", Path: "container.user", Default: "devai"},
		{Name: "WORKSPACE_DIR", Path: "container.workspace", Default: "/workspace"},
		{Name: "JUPYTER_HOST", Path: "services.jupyter.host", Default: "127.0.0.1"},
		{Name: "JUPYTER_PORT", Path: "services.jupyter.port", Default: 8888},
		{Name: "SSH_PORT", Path: "services.ssh.port", Default: 2222},
		{Name: "GPU_ENABLED", Path: "resources.gpu.enabled", Default: false},
		{Name: "CPU_LIMIT", Path: "resources.cpu", Default: 2},
	}
}

// RenderKubernetes writes the ConfigMap document the kustomize base pulls in.
// Profile and generation time ride along as annotations: YAML comments would
// not survive the object round-tripping client-side tooling applies.
func (r *Renderer) RenderKubernetes(ctx context.Context) error {
	data := map[string]string{}
	for _, field := range configMapFields() {
		resolved := r.Layers.Lookup(field.Path, field.Default)
		data[field.Name] = utils.AnyToString(resolved.Value)
	}
	memory := r.Layers.Lookup("resources.memory_gb", 8)
	data["MEMORY_LIMIT"] = utils.AnyToString(memory.Value) + "Gi"

	appName := utils.AnyToString(r.Layers.Lookup("app.name", "devai").Value)
	namespace := utils.AnyToString(r.Layers.Lookup("kubernetes.namespace", "devai").Value)

	configMap := corev1.ConfigMap{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "ConfigMap",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      naming.ConfigMapName(appName),
			Namespace: namespace,
			Labels: map[string]string{
				"app.kubernetes.io/name":       naming.Sanitize(appName),
				"app.kubernetes.io/managed-by": "generate-config",
			},
			Annotations: map[string]string{
				"devai.io/profile":      r.Layers.Profile,
				"devai.io/generated-at": r.timestamp(),
			},
		},
		Data: data,
	}

	encoded, err := yaml.Marshal(configMap)
	if err != nil {
		return fmt.Errorf("failed to marshal ConfigMap: %w", err)
	}
	return r.write(ctx, configMapPath, encoded)
}
