package utils

import (
	"fmt"
	"strconv"
)

// AnyToString maps resolved configuration values to the strings artifacts
// carry, keeping YAML-native scalar types stable across renders.
func AnyToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
