package btrfsutil

// Sync forces a commit of the current transaction on the filesystem
// referenced by target and blocks until it has reached disk. If the target
// is not on a BTRFS filesystem, an error will be returned.
func Sync(target Target) error {
	res, err := resolve(target, true)
	if err != nil {
		return err
	}
	fd, release, err := res.acquire()
	if err != nil {
		return err
	}
	defer release()
	if err := ioctlNone(fd, BTRFS_IOC_SYNC); err != nil {
		return res.wrapOs("sync", err)
	}
	return nil
}

// StartSync starts a commit of the current transaction on the filesystem
// referenced by target without waiting for it to finish, and returns the
// transaction id assigned by the kernel. The id is never 0; pass it to
// WaitSync to block until the commit is durable.
func StartSync(target Target) (uint64, error) {
	res, err := resolve(target, true)
	if err != nil {
		return 0, err
	}
	fd, release, err := res.acquire()
	if err != nil {
		return 0, err
	}
	defer release()
	var transid uint64
	if err := ioctlUint64(fd, BTRFS_IOC_START_SYNC, &transid); err != nil {
		return 0, res.wrapOs("start_sync", err)
	}
	return transid, nil
}

// WaitSync blocks until the transaction identified by transid has durably
// committed on the filesystem referenced by target. A transid of 0 means the
// currently open transaction; if none is open, WaitSync returns immediately.
func WaitSync(target Target, transid uint64) error {
	res, err := resolve(target, true)
	if err != nil {
		return err
	}
	fd, release, err := res.acquire()
	if err != nil {
		return err
	}
	defer release()
	if err := ioctlUint64(fd, BTRFS_IOC_WAIT_SYNC, &transid); err != nil {
		return res.wrapOs("wait_sync", err)
	}
	return nil
}

// SyncFilesystem runs an I/O sync on the filesystem at the given path.
// If the path is not a BTRFS filesystem, an error will be returned.
func SyncFilesystem(path string) error {
	return Sync(PathTarget(path))
}

// StartSyncFilesystem starts a sync on the filesystem at the given path and
// returns the transaction id.
func StartSyncFilesystem(path string) (uint64, error) {
	return StartSync(PathTarget(path))
}

// WaitSyncFilesystem waits for the given transaction to commit on the
// filesystem at the given path.
func WaitSyncFilesystem(path string, transid uint64) error {
	return WaitSync(PathTarget(path), transid)
}
