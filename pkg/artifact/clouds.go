package artifact

import (
	"os"
	"path/filepath"
)

// CloudLister enumerates the cloud roots that receive terraform variables.
type CloudLister interface {
	Clouds() ([]string, error)
}

// DeployDirClouds discovers clouds from the repository layout: a cloud is
// enabled by its subdirectory existing under deploy/terraform at invocation
// time. ReadDir keeps the enumeration in lexical order, so generation stays
// deterministic.
type DeployDirClouds struct {
	Root string
}

func (d *DeployDirClouds) Clouds() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(d.Root, terraformDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	clouds := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			clouds = append(clouds, entry.Name())
		}
	}
	return clouds, nil
}

// StaticClouds is a fixed enumeration, for tests and tooling that renders
// for clouds not present on disk.
type StaticClouds []string

func (s StaticClouds) Clouds() ([]string, error) {
	return s, nil
}
