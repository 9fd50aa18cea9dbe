package btrfsutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Filesystem represents a mounted BTRFS filesystem.
type Filesystem struct {
	Path         string
	Device       string
	MountOptions []string
}

// ListFilesystems returns a list of mounted BTRFS filesystems.
func ListFilesystems() ([]*Filesystem, error) {
	f, err := os.Open("/proc/mounts")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return listMountsFromReader(f)
}

// FindRootMount returns the root btrfs mount for the given path.
func FindRootMount(path string) (string, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	f, err := os.Open("/proc/mounts")
	if err != nil {
		return "", err
	}
	defer f.Close()
	return findRootMountFromReader(f, path)
}

// Sync runs an I/O sync on the filesystem.
func (f *Filesystem) Sync() error { return SyncFilesystem(f.Path) }

// StartSync starts a sync on the filesystem and returns the transaction id.
func (f *Filesystem) StartSync() (uint64, error) { return StartSyncFilesystem(f.Path) }

// WaitSync waits for the given transaction to commit on the filesystem.
func (f *Filesystem) WaitSync(transid uint64) error { return WaitSyncFilesystem(f.Path, transid) }

// GetInfo returns metadata about the filesystem.
func (f *Filesystem) GetInfo() (*FilesystemInfo, error) {
	return GetFilesystemInfo(PathTarget(f.Path))
}

func listMountsFromReader(r io.Reader) ([]*Filesystem, error) {
	s := bufio.NewScanner(r)
	var out []*Filesystem
	for s.Scan() {
		fields := strings.Fields(s.Text())
		if len(fields) < 4 {
			// This is not a line we can parse for a filesystem
			continue
		}
		if fields[2] != "btrfs" {
			// This is not a btrfs filesystem
			continue
		}
		out = append(out, &Filesystem{
			Path:         fields[1],
			Device:       fields[0],
			MountOptions: strings.Split(fields[3], ","),
		})
	}
	return out, s.Err()
}

func findRootMountFromReader(r io.Reader, path string) (string, error) {
	var rootMount string
	s := bufio.NewScanner(r)
	for s.Scan() {
		fields := strings.Fields(s.Text())
		if len(fields) < 3 {
			continue
		}
		if fields[2] != "btrfs" {
			continue
		}
		// Longest mount point containing the path wins. The prefix has to
		// end on a path boundary so /home does not claim /homework.
		mount := fields[1]
		if path != mount {
			if !strings.HasPrefix(path, mount) {
				continue
			}
			if mount != "/" && path[len(mount)] != '/' {
				continue
			}
		}
		if len(mount) > len(rootMount) {
			rootMount = mount
		}
	}
	if err := s.Err(); err != nil {
		return "", err
	}
	if rootMount == "" {
		return "", fmt.Errorf("could not find root mount for path %s", path)
	}
	return rootMount, nil
}
