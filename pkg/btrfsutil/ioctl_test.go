package btrfsutil

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestIoctlCmdValues(t *testing.T) {
	// Known-good values from the kernel's btrfs.h.
	assert.Equal(t, IoctlCmd(0x9408), BTRFS_IOC_SYNC)
	assert.Equal(t, IoctlCmd(0x80089418), BTRFS_IOC_START_SYNC)
	assert.Equal(t, IoctlCmd(0x40089416), BTRFS_IOC_WAIT_SYNC)
	assert.Equal(t, IoctlCmd(0x8400941f), BTRFS_IOC_FS_INFO)
}

func TestIoctlCmdSize(t *testing.T) {
	assert.Equal(t, uintptr(0), BTRFS_IOC_SYNC.Size())
	assert.Equal(t, uintptr(8), BTRFS_IOC_START_SYNC.Size())
	assert.Equal(t, uintptr(1024), BTRFS_IOC_FS_INFO.Size())
}

func TestIoctlCmdString(t *testing.T) {
	assert.Equal(t, "BTRFS_IOC_WAIT_SYNC", BTRFS_IOC_WAIT_SYNC.String())
	assert.Equal(t, "0x00001234", IoctlCmd(0x1234).String())
}

func TestFilesystemInfoArgsLayout(t *testing.T) {
	// The kernel struct is exactly 1K.
	assert.Equal(t, uintptr(1024), unsafe.Sizeof(filesystemInfoArgs{}))
}

func TestDecodeStructure(t *testing.T) {
	buf := make([]byte, 1024)
	// max_id 5, num_devices 2, fsid, then nodesize 16384 little-endian.
	buf[0] = 5
	buf[8] = 2
	copy(buf[16:32], "0123456789abcdef")
	buf[32] = 0x00
	buf[33] = 0x40

	args := &filesystemInfoArgs{}
	assert.NoError(t, decodeStructure(buf, args))
	assert.Equal(t, uint64(5), args.MaxID)
	assert.Equal(t, uint64(2), args.NumDevices)
	assert.Equal(t, uint32(16384), args.NodeSize)
	assert.Equal(t, byte('0'), args.FSID[0])
}
