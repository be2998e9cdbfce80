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

//go:build linux

package shmopen

import (
	"strings"

	"golang.org/x/sys/unix"
)

// Linux has no shm_open syscall; libc realizes it as open(2) on the tmpfs
// mounted at /dev/shm, with leading slashes of the name stripped. Same here.
const shmDir = "/dev/shm/"

func shmOpen(name string, flag int, mode uint32) (int, error) {
	fd, err := unix.Open(shmDir+strings.TrimLeft(name, "/"), flag, mode)
	if err != nil {
		return -1, err
	}
	return fd, nil
}
