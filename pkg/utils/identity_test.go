package utils

import (
	"os"
	"testing"

	"gotest.tools/v3/assert"
)

func TestCurrentIdentity(t *testing.T) {
	identity := CurrentIdentity()
	assert.Equal(t, os.Getuid(), identity.UID)
	assert.Equal(t, os.Getgid(), identity.GID)
}
