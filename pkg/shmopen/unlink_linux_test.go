//go:build linux

package shmopen

import (
	"strings"

	"golang.org/x/sys/unix"
)

// shm_unlink is the caller's collaborator, not part of the exported surface;
// the tests need it to scrub names between runs.
func shmUnlink(name string) error {
	return unix.Unlink(shmDir + strings.TrimLeft(name, "/"))
}
