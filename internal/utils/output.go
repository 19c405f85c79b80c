package output

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v2"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Format renders v in the requested encoding. Commands validate the format
// at flag-parsing time, so an unknown value here is a programming error.
func Format(v interface{}, format string) (string, error) {
	switch format {
	case FormatYAML:
		return PrettyPrintYAML(v)
	case FormatJSON:
		return PrettyPrintJSON(v)
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

func PrettyPrintJSON(v interface{}) (string, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func PrettyPrintYAML(v interface{}) (string, error) {
	yamlData, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(yamlData), nil
}
