package artifact

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devai-lab/generate-config/internal/testutil"
	"github.com/devai-lab/generate-config/pkg/config"
)

func TestRenderTerraform(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "deploy/terraform/aws", "deploy/terraform/gcp")

	renderer := pinnedRenderer(testLayers(), root)
	assert.NoError(t, renderer.RenderTerraform(t.Context()))

	for _, cloud := range []string{"aws", "gcp"} {
		t.Run(cloud, func(t *testing.T) {
			testutil.CompareFileWithFixture(t, filepath.Join(root, terraformDir, cloud, "terraform.tfvars"))
		})
	}
}

func TestRenderTerraformNoClouds(t *testing.T) {
	renderer := pinnedRenderer(testLayers(), t.TempDir())
	assert.NoError(t, renderer.RenderTerraform(t.Context()))
}

func TestRenderTerraformCloudOverrides(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "deploy/terraform/aws")

	layers := &config.Layers{
		Profile: "dev",
		Common: config.Configuration{
			"clouds": map[string]any{
				"aws": map[string]any{
					"region":        "eu-west-3",
					"instance_type": "m7i.2xlarge",
				},
			},
		},
		Overlay: config.Configuration{},
	}
	renderer := pinnedRenderer(layers, root)
	assert.NoError(t, renderer.RenderTerraform(t.Context()))

	content := readArtifact(t, root, "deploy/terraform/aws/terraform.tfvars")
	assert.Contains(t, content, `region = "eu-west-3"`)
	assert.Contains(t, content, `instance_type = "m7i.2xlarge"`)
}

func TestDeployDirClouds(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "deploy/terraform/aws", "deploy/terraform/azure", "deploy/terraform/gcp")
	writeFile(t, filepath.Join(root, "deploy/terraform/README.md"), "not a cloud\n")

	clouds, err := (&DeployDirClouds{Root: root}).Clouds()
	assert.NoError(t, err)
	assert.Equal(t, []string{"aws", "azure", "gcp"}, clouds)
}

func TestDeployDirCloudsMissingRoot(t *testing.T) {
	clouds, err := (&DeployDirClouds{Root: t.TempDir()}).Clouds()
	assert.NoError(t, err)
	assert.Empty(t, clouds)
}

func TestHclValue(t *testing.T) {
	for _, testCase := range []struct {
		name     string
		value    any
		expected string
	}{
		{
			name:     "string is quoted",
			value:    "us-east-1",
			expected: `"us-east-1"`,
		},
		{
			name:     "int is bare",
			value:    4,
			expected: "4",
		},
		{
			name:     "int64 is bare",
			value:    int64(200),
			expected: "200",
		},
		{
			name:     "float is bare",
			value:    2.5,
			expected: "2.5",
		},
		{
			name:     "bool is bare",
			value:    true,
			expected: "true",
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, hclValue(testCase.value))
		})
	}
}
