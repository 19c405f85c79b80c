package config

import (
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ValidateSchema checks a flattened configuration view against the JSON
// schema stored at schemaPath. Artifact generation never calls this; schema
// conformance is an opt-in check so that sparse or experimental profiles
// keep working.
func ValidateSchema(schemaPath string, cfg Configuration) error {
	reader, err := os.Open(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to open schema file: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	schema, err := jsonschema.UnmarshalJSON(reader)
	if err != nil {
		return fmt.Errorf("failed to unmarshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaPath, schema); err != nil {
		return fmt.Errorf("failed to add schema resource: %w", err)
	}
	sch, err := compiler.Compile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	if err := sch.Validate(convertToInterface(cfg)); err != nil {
		return fmt.Errorf("configuration does not conform to %s: %w", schemaPath, err)
	}
	return nil
}

// Needed to convert Configuration to map[string]interface{} for jsonschema validation
// see: https://github.com/santhosh-tekuri/jsonschema/blob/boon/schema.go#L124
func convertToInterface(cfg Configuration) map[string]any {
	m := map[string]any{}
	for k, v := range cfg {
		if sub, ok := AsConfiguration(v); ok {
			m[k] = convertToInterface(sub)
		} else {
			m[k] = v
		}
	}
	return m
}
