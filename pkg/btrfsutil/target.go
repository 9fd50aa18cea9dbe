/*
This file is part of btrfsutil.

Btrfsutil is free software: you can redistribute it and/or modify it under the terms of the
GNU Lesser General Public License as published by the Free Software Foundation, either
version 3 of the License, or (at your option) any later version.

Btrfsutil is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
See the GNU Lesser General Public License for more details.

You should have received a copy of the GNU Lesser General Public License along with btrfsutil.
If not, see <https://www.gnu.org/licenses/>.
*/

// Package btrfsutil resolves caller-supplied filesystem targets and issues
// btrfs transaction sync requests against them.
package btrfsutil

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"golang.org/x/sys/unix"
)

// PathSource is implemented by values that can produce a path form of
// themselves. It is consulted at most once per resolution, and the Target it
// returns must be a path or byte form.
type PathSource interface {
	FilesystemPath() (Target, error)
}

type targetKind uint8

const (
	targetInvalid targetKind = iota
	targetPath
	targetBytes
	targetFd
	targetSource
)

// Target is a caller-supplied reference to a btrfs filesystem: a path
// string, raw path bytes, an open file descriptor, or a PathSource. The zero
// value is not a valid Target.
type Target struct {
	kind   targetKind
	path   string
	bytes  []byte
	fd     int64
	source PathSource
}

// PathTarget references the filesystem mounted at path.
func PathTarget(path string) Target {
	return Target{kind: targetPath, path: path}
}

// BytesTarget references the filesystem at the raw path in b. The bytes are
// adopted as-is, not copied.
func BytesTarget(b []byte) Target {
	return Target{kind: targetBytes, bytes: b}
}

// FdTarget references the filesystem behind an open file descriptor. The
// descriptor stays owned by the caller and is never closed by this package.
func FdTarget(fd int64) Target {
	return Target{kind: targetFd, fd: fd}
}

// SourceTarget references the filesystem named by a PathSource.
func SourceTarget(src PathSource) Target {
	return Target{kind: targetSource, source: src}
}

func (t Target) typeName() string {
	switch t.kind {
	case targetPath:
		return "string"
	case targetBytes:
		return "[]byte"
	case targetFd:
		return "file descriptor"
	case targetSource:
		return fmt.Sprintf("%T", t.source)
	default:
		return "uninitialized Target"
	}
}

// maxFd is the largest descriptor value the kernel interface can represent,
// a C int.
const maxFd = math.MaxInt32

// resolvedTarget is the normalized form of a Target: either a nul-validated
// path or a caller-owned descriptor, never both.
type resolvedTarget struct {
	path string
	fd   int
}

func resolvedPath(path string) resolvedTarget { return resolvedTarget{path: path, fd: -1} }
func resolvedFd(fd int) resolvedTarget        { return resolvedTarget{fd: fd} }

// resolve classifies a Target into its normalized form. Classification is
// ordered: descriptor (when allowFd), raw bytes, path string, then a single
// PathSource indirection whose result must itself be bytes or a string.
func resolve(t Target, allowFd bool) (resolvedTarget, error) {
	switch {
	case allowFd && t.kind == targetFd:
		fd, err := fdFromInt(t.fd)
		if err != nil {
			return resolvedTarget{}, err
		}
		return resolvedFd(fd), nil
	case t.kind == targetBytes:
		return pathFromBytes(t.bytes)
	case t.kind == targetPath:
		return pathFromString(t.path)
	case t.kind == targetSource:
		converted, err := t.source.FilesystemPath()
		if err != nil {
			return resolvedTarget{}, &Error{Op: "resolve", Err: err}
		}
		switch converted.kind {
		case targetBytes:
			return pathFromBytes(converted.bytes)
		case targetPath:
			return pathFromString(converted.path)
		default:
			return resolvedTarget{}, typeMismatch(converted, allowFd)
		}
	default:
		return resolvedTarget{}, typeMismatch(t, allowFd)
	}
}

func typeMismatch(t Target, allowFd bool) error {
	allowed := "string, []byte, or PathSource"
	if allowFd {
		allowed = "string, []byte, PathSource, or file descriptor"
	}
	return &Error{
		Op:  "resolve",
		Err: fmt.Errorf("%w: expected %s, not %s", ErrTypeMismatch, allowed, t.typeName()),
	}
}

// fdFromInt narrows an integer to a kernel descriptor, rejecting values the
// kernel interface cannot represent.
func fdFromInt(fd int64) (int, error) {
	if fd < 0 {
		return 0, &Error{Op: "resolve", Err: ErrFdNegative}
	}
	if fd > maxFd {
		return 0, &Error{Op: "resolve", Err: ErrFdOverflow}
	}
	return int(fd), nil
}

// A path handed to the kernel is nul-terminated there, so a nul inside the
// buffer would silently truncate it. Reject it up front.
func pathFromBytes(b []byte) (resolvedTarget, error) {
	if bytes.IndexByte(b, 0) >= 0 {
		return resolvedTarget{}, &Error{Op: "resolve", Path: string(b), Err: ErrEmbeddedNul}
	}
	return resolvedPath(string(b)), nil
}

func pathFromString(s string) (resolvedTarget, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return resolvedTarget{}, &Error{Op: "resolve", Path: s, Err: ErrEmbeddedNul}
	}
	return resolvedPath(s), nil
}

// acquire yields a descriptor for the target plus a release func that must
// run on every exit path. A descriptor opened here from a path is closed by
// release; a caller-supplied descriptor is left alone.
func (r resolvedTarget) acquire() (int, func(), error) {
	if r.fd >= 0 {
		return r.fd, func() {}, nil
	}
	fd, err := unix.Open(r.path, unix.O_RDONLY, 0)
	if err != nil {
		return 0, nil, &Error{Op: "open", Path: r.path, Errno: errnoOf(err), Err: err}
	}
	return fd, func() { unix.Close(fd) }, nil
}

// wrapOs attaches the target's path, when it had one, to a kernel failure.
func (r resolvedTarget) wrapOs(op string, err error) error {
	return &Error{Op: op, Path: r.path, Errno: errnoOf(err), Err: err}
}
