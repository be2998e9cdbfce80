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

package shmopen

import "errors"

// ErrNotSupported is returned on platforms without POSIX shared memory.
var ErrNotSupported = errors.New("shmopen: no POSIX shared memory support on this platform")

// Open creates or opens the named POSIX shared-memory object and returns its
// file descriptor.
//
// name is the object name, by convention beginning with "/" and containing no
// further slash. flag is a bitmask of unix.O_* access and creation flags
// (O_RDONLY/O_RDWR, O_CREAT, O_EXCL, O_TRUNC). mode carries the permission
// bits for a newly created object and is ignored unless O_CREAT is set. All
// three are forwarded to the OS untouched.
//
// On failure fd is -1 and err is the raw syscall.Errno the OS produced, with
// no translation or wrapping; compare it with errors.Is against unix.EEXIST,
// unix.ENOENT and friends. The returned descriptor is sized with
// unix.Ftruncate, mapped with unix.Mmap and released with unix.Close, none of
// which this package performs.
func Open(name string, flag int, mode uint32) (fd int, err error) {
	return shmOpen(name, flag, mode)
}
