// Package shm implements the anonymous shared-memory pool helper used to
// back wl_shm buffers: open, immediately unlink, truncate, mmap.
package shm

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// Pool is a memory-mapped, anonymously-backed shared buffer. Its file
// descriptor is meant to be handed to the compositor exactly once, in a
// create_pool request; Data gives the application mutable access to the
// same bytes the compositor reads.
type Pool struct {
	file *os.File
	data []byte
}

// Alloc opens an anonymous shared-memory object, unlinks it from the
// filesystem namespace, truncates it to size, and maps it read/write. This
// mirrors glibc's shm_open followed by shm_unlink: POSIX shared memory
// objects on Linux are just regular files under /dev/shm.
func Alloc(size int) (*Pool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("shm: invalid pool size %d", size)
	}

	path, fd, err := openAnonymous()
	if err != nil {
		return nil, &OpenError{Op: "open", Cause: err}
	}
	// The name leaves no trace once unlinked; only the fd (and, for us,
	// the in-process *os.File) keeps the backing storage alive.
	if err := unix.Unlink(path); err != nil {
		unix.Close(fd)
		return nil, &OpenError{Op: "unlink", Cause: err}
	}

	file := os.NewFile(uintptr(fd), path)
	if err := file.Truncate(int64(size)); err != nil {
		file.Close()
		return nil, &OpenError{Op: "truncate", Cause: err}
	}

	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		file.Close()
		return nil, &OpenError{Op: "mmap", Cause: err}
	}

	return &Pool{file: file, data: data}, nil
}

// openAnonymous picks a fresh name under /dev/shm and opens it with
// O_CREAT|O_EXCL|O_RDWR, retrying on name collision.
func openAnonymous() (path string, fd int, err error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for attempt := 0; attempt < 8; attempt++ {
		path = fmt.Sprintf("/dev/shm/gowl-%d-%x", os.Getpid(), r.Uint64())
		fd, err = unix.Open(path, unix.O_CREAT|unix.O_EXCL|unix.O_RDWR, 0o666)
		if err == nil {
			return path, fd, nil
		}
		if err != unix.EEXIST {
			return "", -1, err
		}
	}
	return "", -1, fmt.Errorf("exhausted attempts choosing an anonymous shm name: %w", err)
}

// FD returns the backing file descriptor, for use as the sole ancillary
// descriptor in a create_pool request.
func (p *Pool) FD() uintptr { return p.file.Fd() }

// Data returns the mapped bytes. The slice is valid until Resize or Close.
func (p *Pool) Data() []byte { return p.data }

// Len reports the pool's current size in bytes.
func (p *Pool) Len() int { return len(p.data) }

// Resize grows the pool to newSize, which must not be smaller than the
// current size (shrinking shared-memory pools is not supported by the
// protocol). The backing file is truncated and remapped.
func (p *Pool) Resize(newSize int) error {
	if newSize < len(p.data) {
		return fmt.Errorf("shm: cannot shrink pool from %d to %d bytes", len(p.data), newSize)
	}
	if newSize == len(p.data) {
		return nil
	}
	if err := p.file.Truncate(int64(newSize)); err != nil {
		return fmt.Errorf("shm: truncate: %w", err)
	}
	if err := unix.Munmap(p.data); err != nil {
		return fmt.Errorf("shm: munmap: %w", err)
	}
	data, err := unix.Mmap(int(p.file.Fd()), 0, newSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return fmt.Errorf("shm: mmap: %w", err)
	}
	p.data = data
	return nil
}

// Close unmaps the pool and closes its backing file descriptor.
func (p *Pool) Close() error {
	if p.data != nil {
		if err := unix.Munmap(p.data); err != nil {
			return fmt.Errorf("shm: munmap: %w", err)
		}
		p.data = nil
	}
	return p.file.Close()
}
