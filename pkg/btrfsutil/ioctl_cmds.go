package btrfsutil

import (
	"fmt"
	"unsafe"
)

// Linux ioctl command encoding.
const (
	IOC_NRBITS   = 8
	IOC_TYPEBITS = 8
	IOC_SIZEBITS = 14
	IOC_DIRBITS  = 2

	IOC_NRSHIFT   = 0
	IOC_TYPESHIFT = IOC_NRSHIFT + IOC_NRBITS
	IOC_SIZESHIFT = IOC_TYPESHIFT + IOC_TYPEBITS
	IOC_DIRSHIFT  = IOC_SIZESHIFT + IOC_SIZEBITS

	IOC_SIZEMASK = (1 << IOC_SIZEBITS) - 1

	IOC_NONE  = 0
	IOC_WRITE = 1
	IOC_READ  = 2
)

const BTRFS_IOCTL_MAGIC uintptr = 0x94

// IoctlCmd is a type cast of uintptr to make it more clear that it is an ioctl.
type IoctlCmd uintptr

func (c IoctlCmd) Size() uintptr {
	return (uintptr(c) >> IOC_SIZESHIFT) & IOC_SIZEMASK
}

func (c IoctlCmd) String() string {
	switch c {
	case BTRFS_IOC_SYNC:
		return "BTRFS_IOC_SYNC"
	case BTRFS_IOC_START_SYNC:
		return "BTRFS_IOC_START_SYNC"
	case BTRFS_IOC_WAIT_SYNC:
		return "BTRFS_IOC_WAIT_SYNC"
	case BTRFS_IOC_FS_INFO:
		return "BTRFS_IOC_FS_INFO"
	default:
		return fmt.Sprintf("0x%08x", uintptr(c))
	}
}

// BTRFS ioctl commands used by this package.
var (
	BTRFS_IOC_SYNC       = _IO(BTRFS_IOCTL_MAGIC, 8)
	BTRFS_IOC_WAIT_SYNC  = _IOW(BTRFS_IOCTL_MAGIC, 22, unsafe.Sizeof(uint64(0)))
	BTRFS_IOC_START_SYNC = _IOR(BTRFS_IOCTL_MAGIC, 24, unsafe.Sizeof(uint64(0)))
	BTRFS_IOC_FS_INFO    = _IOR(BTRFS_IOCTL_MAGIC, 31, unsafe.Sizeof(filesystemInfoArgs{}))
)

// _IOC generates an IOC command.
func _IOC(dir, t, nr, size uintptr) IoctlCmd {
	return IoctlCmd((dir << IOC_DIRSHIFT) | (t << IOC_TYPESHIFT) |
		(nr << IOC_NRSHIFT) | (size << IOC_SIZESHIFT))
}

// _IOR generates an IOR command.
func _IOR(t, nr, size uintptr) IoctlCmd {
	return _IOC(IOC_READ, t, nr, size)
}

// _IOW generates an IOW command.
func _IOW(t, nr, size uintptr) IoctlCmd {
	return _IOC(IOC_WRITE, t, nr, size)
}

// _IO generates an IO command.
func _IO(t, nr uintptr) IoctlCmd {
	return _IOC(IOC_NONE, t, nr, 0)
}
