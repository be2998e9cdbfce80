//go:build darwin || freebsd

package shmopen

import (
	"syscall"
	"unsafe"
)

// shm_unlink is the caller's collaborator, not part of the exported surface;
// the tests need it to scrub names between runs.
func shmUnlink(name string) error {
	namePtr, err := syscall.BytePtrFromString(name)
	if err != nil {
		return err
	}
	if _, _, errno := syscall.Syscall(syscall.SYS_SHM_UNLINK,
		uintptr(unsafe.Pointer(namePtr)), 0, 0); errno != 0 {
		return errno
	}
	return nil
}
