/*
 * Copyright 2025 SREDiag Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

//go:build darwin || freebsd

package shmopen

import (
	"syscall"
	"unsafe"
)

// The kernel takes shm_open's three arguments directly; the variadic shape
// exists only in the libc declaration.
func shmOpen(name string, flag int, mode uint32) (int, error) {
	namePtr, err := syscall.BytePtrFromString(name)
	if err != nil {
		return -1, err
	}
	fd, _, errno := syscall.Syscall(syscall.SYS_SHM_OPEN,
		uintptr(unsafe.Pointer(namePtr)),
		uintptr(flag),
		uintptr(mode))
	if errno != 0 {
		return -1, errno
	}
	return int(fd), nil
}
