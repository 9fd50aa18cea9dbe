package btrfsutil

import "github.com/google/uuid"

type filesystemInfoArgs struct {
	MaxID          uint64
	NumDevices     uint64
	FSID           [16]byte
	NodeSize       uint32
	SectorSize     uint32
	CloneAlignment uint32
	CsumType       uint16
	CsumSize       uint16
	Flags          uint64
	Generation     uint64
	MetadataUUID   [16]byte
	Reserved       [944]byte
}

// FilesystemInfo is metadata about a mounted BTRFS filesystem.
type FilesystemInfo struct {
	MaxID        uint64
	NumDevices   uint64
	FSID         uuid.UUID
	NodeSize     uint32
	SectorSize   uint32
	CloneAlign   uint32
	CsumType     uint16
	CsumSize     uint16
	Flags        uint64
	Generation   uint64
	MetadataUUID uuid.UUID
}

// GetFilesystemInfo returns metadata about the filesystem referenced by
// target. If the target is not a BTRFS filesystem, an error will be
// returned.
func GetFilesystemInfo(target Target) (*FilesystemInfo, error) {
	res, err := resolve(target, true)
	if err != nil {
		return nil, err
	}
	fd, release, err := res.acquire()
	if err != nil {
		return nil, err
	}
	defer release()
	args := &filesystemInfoArgs{}
	if err := callReadIoctl(fd, BTRFS_IOC_FS_INFO, args); err != nil {
		return nil, res.wrapOs("fs_info", err)
	}
	return &FilesystemInfo{
		MaxID:        args.MaxID,
		NumDevices:   args.NumDevices,
		FSID:         uuid.UUID(args.FSID),
		NodeSize:     args.NodeSize,
		SectorSize:   args.SectorSize,
		CloneAlign:   args.CloneAlignment,
		CsumType:     args.CsumType,
		CsumSize:     args.CsumSize,
		Flags:        args.Flags,
		Generation:   args.Generation,
		MetadataUUID: uuid.UUID(args.MetadataUUID),
	}, nil
}
