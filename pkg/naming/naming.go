package naming

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// maxLabelLength is the RFC 1123 limit Kubernetes enforces on object names.
const maxLabelLength = 63

func HashString(strs ...string) string {
	combined := ""
	for _, s := range strs {
		combined += s
	}
	hash := sha256.Sum256([]byte(combined))
	return hex.EncodeToString(hash[:])
}

// Sanitize folds a free-form name into a DNS-1123 label fragment: lower-case
// alphanumerics with runs of anything else collapsed to single dashes.
func Sanitize(name string) string {
	builder := strings.Builder{}
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			builder.WriteRune(r)
			continue
		}
		if !strings.HasSuffix(builder.String(), "-") {
			builder.WriteRune('-')
		}
	}
	return strings.Trim(builder.String(), "-")
}

// ConfigMapName derives the name of the generated ConfigMap from the
// application name. Names over the label limit keep a short digest of the
// original input so distinct applications cannot collide after truncation.
func ConfigMapName(appName string) string {
	base := Sanitize(appName)
	if base == "" {
		base = "app"
	}
	name := base + "-config"
	if len(name) <= maxLabelLength {
		return name
	}
	digest := HashString(appName)[:8]
	keep := maxLabelLength - len(digest) - 1
	return strings.TrimRight(name[:keep], "-") + "-" + digest
}
