package artifact

import (
	"bytes"
	"context"
	"fmt"

	"github.com/devai-lab/generate-config/pkg/utils"
)

// composeEnvPath is fixed: the compose project sources its variables from here.
const composeEnvPath = "deploy/compose/.env"

// composeFields is the shape of the compose environment file.
func composeFields() []Field {
	return []Field{
		{Name: "COMPOSE_PROJECT_NAME", Path: "app.name", Default: "devai"},
		{Name: "APP_IMAGE", Path: "app.image", Default: "devai/workbench"},
		{Name: "APP_TAG", Path: "app.tag", Default: "latest"},
		{Name: "CONTAINER_USER", Path: "container.user", Default: "devai"},
		{Name: "WORKSPACE_DIR", Path: "container.workspace", Default: "/workspace"},
		{Name: "JUPYTER_HOST", Path: "services.jupyter.host", Default: "127.0.0.1"},
		{Name: "JUPYTER_PORT", Path: "services.jupyter.port", Default: 8888},
		{Name: "SSH_PORT", Path: "services.ssh.port", Default: 2222},
		{Name: "GPU_ENABLED", Path: "resources.gpu.enabled", Default: false},
		{Name: "SHM_SIZE", Path: "resources.shm_size", Default: "2g"},
	}
}

// RenderCompose writes the shell-sourceable env file consumed by the compose
// project. On top of the configured fields it carries the invoking user's
// numeric identity for container permission mapping.
func (r *Renderer) RenderCompose(ctx context.Context) error {
	buf := &bytes.Buffer{}
	buf.WriteString(r.header())
	buf.WriteString("\n")

	for _, field := range composeFields() {
		resolved := r.Layers.Lookup(field.Path, field.Default)
		fmt.Fprintf(buf, "%s=%s\n", field.Name, utils.AnyToString(resolved.Value))
	}

	identity := r.Identity()
	fmt.Fprintf(buf, "USER_ID=%d\n", identity.UID)
	fmt.Fprintf(buf, "GROUP_ID=%d\n", identity.GID)

	return r.write(ctx, composeEnvPath, buf.Bytes())
}
