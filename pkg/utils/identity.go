package utils

import (
	"os"
)

// Identity is the numeric uid/gid pair of the invoking user. The compose
// artifact carries it so bind mounts inside the container keep the host
// user's ownership.
type Identity struct {
	UID int
	GID int
}

// CurrentIdentity captures the invoking user's identity from the process.
func CurrentIdentity() Identity {
	return Identity{
		UID: os.Getuid(),
		GID: os.Getgid(),
	}
}
