// Package shmopen exposes the POSIX shm_open primitive behind a fixed-arity
// Go function.
//
// shm_open is declared variadic in C (the mode argument arrives through the
// trailing argument list), a shape neither cgo nor the syscall package can
// call. Open fixes the arity to the one trailing argument that is ever
// meaningful and forwards everything verbatim to the operating system.
//
// The package is a transparent passthrough: it validates nothing, retries
// nothing, and returns the OS result unchanged. Sizing, mapping, closing and
// unlinking the object remain the caller's job via unix.Ftruncate, unix.Mmap,
// unix.Close and shm_unlink. See examples/ for the full caller-side flow.
package shmopen
