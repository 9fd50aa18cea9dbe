package btrfsutil

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

func callReadIoctl[T any](fd int, c IoctlCmd, out *T) error {
	buf := make([]byte, c.Size())
	if err := ioctlBytes(fd, c, buf); err != nil {
		return err
	}
	return decodeStructure(buf, out)
}

// decodeStructure decodes a structure from a byte slice.
func decodeStructure[T any](data []byte, out *T) error {
	return binary.Read(bytes.NewReader(data), binary.LittleEndian, out)
}

// ioctlNone sends an ioctl command with no argument.
func ioctlNone(fd int, name IoctlCmd) error {
	return ioctl(fd, name, 0)
}

// ioctlUint64 sends an ioctl command with a uint64.
func ioctlUint64(fd int, name IoctlCmd, data *uint64) error {
	return ioctlUnsafe(fd, name, unsafe.Pointer(data))
}

// ioctlBytes sends an ioctl command with a byte slice.
func ioctlBytes(fd int, name IoctlCmd, data []byte) error {
	return ioctlUnsafe(fd, name, unsafe.Pointer(&data[0]))
}

// ioctlUnsafe sends an ioctl command with an unsafe.Pointer.
func ioctlUnsafe(fd int, name IoctlCmd, data unsafe.Pointer) error {
	return ioctl(fd, name, uintptr(data))
}

// ioctl sends an ioctl command.
func ioctl(fd int, name IoctlCmd, data uintptr) error {
	_, _, err := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(name), data)
	if err != 0 {
		return fmt.Errorf("ioctl %s failed: %w", name.String(), err)
	}
	return nil
}
