package artifact

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/devai-lab/generate-config/pkg/utils"
)

const terraformDir = "deploy/terraform"

// terraformFields is the shape of the tfvars file rendered into every cloud
// root. Region and instance sizing resolve from per-cloud key paths; the
// remaining fields are cloud-agnostic.
func terraformFields(cloud string) []Field {
	return []Field{
		{Name: "project_name", Path: "app.name", Default: "devai"},
		{Name: "region", Path: "clouds." + cloud + ".region", Default: defaultRegion(cloud)},
		{Name: "instance_type", Path: "clouds." + cloud + ".instance_type", Default: defaultInstanceType(cloud)},
		{Name: "cpu", Path: "resources.cpu", Default: 2},
		{Name: "memory_gb", Path: "resources.memory_gb", Default: 8},
		{Name: "disk_gb", Path: "resources.disk_gb", Default: 100},
		{Name: "gpu_enabled", Path: "resources.gpu.enabled", Default: false},
	}
}

func defaultRegion(cloud string) string {
	switch cloud {
	case "aws":
		return "us-east-1"
	case "azure":
		return "westeurope"
	case "gcp":
		return "us-central1"
	default:
		return ""
	}
}

func defaultInstanceType(cloud string) string {
	switch cloud {
	case "aws":
		return "t3.xlarge"
	case "azure":
		return "Standard_D4s_v5"
	case "gcp":
		return "e2-standard-4"
	default:
		return ""
	}
}

// RenderTerraform writes one terraform.tfvars per enabled cloud. A cloud is
// enabled by its root directory existing under deploy/terraform; no clouds
// means nothing to render.
func (r *Renderer) RenderTerraform(ctx context.Context) error {
	clouds, err := r.Clouds.Clouds()
	if err != nil {
		return fmt.Errorf("failed to enumerate terraform clouds: %w", err)
	}

	for _, cloud := range clouds {
		buf := &bytes.Buffer{}
		buf.WriteString(r.header())
		buf.WriteString("\n")

		fmt.Fprintf(buf, "environment = %q\n", r.Layers.Profile)
		for _, field := range terraformFields(cloud) {
			resolved := r.Layers.Lookup(field.Path, field.Default)
			fmt.Fprintf(buf, "%s = %s\n", field.Name, hclValue(resolved.Value))
		}

		if err := r.write(ctx, filepath.Join(terraformDir, cloud, "terraform.tfvars"), buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// hclValue renders a resolved value as an HCL literal: strings quoted,
// numbers and booleans bare.
func hclValue(value any) string {
	switch v := value.(type) {
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case int, int64, float64:
		return utils.AnyToString(v)
	default:
		return strconv.Quote(utils.AnyToString(value))
	}
}
