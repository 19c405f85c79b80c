package render

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	output "github.com/devai-lab/generate-config/internal/utils"
	"github.com/devai-lab/generate-config/pkg/config"
)

func TestValidate(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = "toml"
	_, err := opts.Validate()
	assert.ErrorContains(t, err, `invalid format "toml"`)

	opts = DefaultOptions()
	opts.Output = ""
	_, err = opts.Validate()
	assert.ErrorContains(t, err, "--output")
}

func TestRenderConfiguration(t *testing.T) {
	buf := &bytes.Buffer{}
	opts := Options{
		completedOptions: &completedOptions{
			Layers: &config.Layers{
				Profile: "prod",
				Common: config.Configuration{
					"app": map[string]any{
						"name": "devai-lab",
						"tag":  "latest",
					},
				},
				Overlay: config.Configuration{
					"app": map[string]any{
						"tag": "stable",
					},
				},
			},
			Format: output.FormatYAML,
			Output: &nopCloser{Writer: buf},
		},
	}
	assert.NoError(t, opts.RenderConfiguration(t.Context()))
	assert.Equal(t, "app:\n  name: devai-lab\n  tag: stable\n", buf.String())
}

type nopCloser struct {
	io.Writer
}

func (n nopCloser) Close() error {
	return nil
}

var _ io.WriteCloser = &nopCloser{}
