package shm

import "fmt"

// OpenError wraps a failure while setting up the anonymous backing file in
// Alloc; Op names the failing step: "open", "unlink", "truncate" or "mmap".
type OpenError struct {
	Op    string
	Cause error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("shm: %s: %v", e.Op, e.Cause)
}

func (e *OpenError) Unwrap() error { return e.Cause }
