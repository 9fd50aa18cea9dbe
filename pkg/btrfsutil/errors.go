package btrfsutil

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

var (
	// ErrTypeMismatch is returned when a Target matches none of the shapes
	// an operation accepts.
	ErrTypeMismatch = errors.New("target type not accepted")
	// ErrEmbeddedNul is returned when a path contains a nul byte before its
	// logical end.
	ErrEmbeddedNul = errors.New("path has embedded nul character")
	// ErrFdOverflow is returned when a file descriptor is greater than the
	// maximum the kernel can represent.
	ErrFdOverflow = errors.New("fd is greater than maximum")
	// ErrFdNegative is returned when a file descriptor is negative.
	ErrFdNegative = errors.New("fd is negative")
)

// Error describes a failed target resolution or sync request. Errno is set
// when the failure crossed the kernel boundary, and Path is set when the
// target being operated on had a textual form.
type Error struct {
	Op    string
	Path  string
	Errno unix.Errno
	Err   error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("btrfsutil: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("btrfsutil: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// errnoOf extracts the kernel errno from err, or 0 if err did not originate
// from a syscall.
func errnoOf(err error) unix.Errno {
	var errno unix.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return 0
}
