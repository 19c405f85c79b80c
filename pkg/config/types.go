package config

import (
	"fmt"
	"reflect"
	"strings"
)

// Configuration is a nested tree of settings decoded from a YAML document.
// Nested mappings are addressed with dotted key paths, e.g. "services.jupyter.port".
type Configuration map[string]any

// Source identifies the layer a resolved value came from.
type Source string

const (
	SourceProfile Source = "profile"
	SourceCommon  Source = "common"
	SourceDefault Source = "default"
)

// Resolved carries a looked-up value together with the layer that supplied it.
type Resolved struct {
	Value  any
	Source Source
}

// Provenance reports what every layer holds for one key path.
type Provenance struct {
	Path string

	Profile    any
	ProfileSet bool
	Common     any
	CommonSet  bool
}

// MissingKeyError records the first path segment that could not be traversed.
type MissingKeyError struct {
	Path string
	Key  string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("key %q not found while resolving path %q", e.Key, e.Path)
}

// GetByPath walks the tree segment by segment. Traversing into anything that
// is not a mapping fails the same way a missing key does.
func (c Configuration) GetByPath(path string) (any, error) {
	current := any(map[string]any(c))
	for _, key := range strings.Split(path, ".") {
		node, ok := asMapping(current)
		if !ok {
			return nil, &MissingKeyError{Path: path, Key: key}
		}
		current, ok = node[key]
		if !ok {
			return nil, &MissingKeyError{Path: path, Key: key}
		}
	}
	return current, nil
}

func asMapping(value any) (map[string]any, bool) {
	switch m := value.(type) {
	case Configuration:
		return m, true
	case map[string]any:
		return m, true
	}
	return nil, false
}

// AsConfiguration converts nested maps of any concrete map type into a
// Configuration, so documents decoded by different YAML packages and literals
// built in tests stay interchangeable.
func AsConfiguration(i any) (Configuration, bool) {
	value := reflect.ValueOf(i)
	if value.Kind() == reflect.Map {
		m := Configuration{}
		for _, k := range value.MapKeys() {
			v := value.MapIndex(k).Interface()
			if nested, ok := AsConfiguration(v); ok {
				m[k.String()] = nested
			} else {
				m[k.String()] = v
			}
		}
		return m, true
	}
	return Configuration{}, false
}

// Merge overlays override onto base, descending into mappings that exist on
// both sides. The base map is updated in place; the return value is only
// needed for the recursive calls.
func Merge(base, override Configuration) Configuration {
	for k, newValue := range override {
		if baseValue, exists := base[k]; exists {
			srcMap, srcMapOk := AsConfiguration(newValue)
			dstMap, dstMapOk := AsConfiguration(baseValue)
			if srcMapOk && dstMapOk {
				newValue = Merge(dstMap, srcMap)
			}
		}
		base[k] = newValue
	}

	return base
}
