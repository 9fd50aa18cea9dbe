package btrfsutil

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestSyncNonexistentPath(t *testing.T) {
	path := t.TempDir() + "/does-not-exist"
	err := Sync(PathTarget(path))
	require.Error(t, err)
	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "open", serr.Op)
	assert.Equal(t, path, serr.Path)
	assert.Equal(t, unix.ENOENT, serr.Errno)
}

func TestSyncResolutionFailureMakesNoKernelCall(t *testing.T) {
	err := Sync(BytesTarget([]byte("/mnt\x00btrfs")))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmbeddedNul)
	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "resolve", serr.Op)
	assert.Zero(t, serr.Errno)
}

func TestSyncCallerFdNotBtrfs(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "plain")
	require.NoError(t, err)
	defer f.Close()

	// A regular file on a non-btrfs filesystem rejects the ioctl with an
	// errno; the error must carry it and no path diagnostic, and the
	// caller's descriptor must stay open.
	err = Sync(FdTarget(int64(f.Fd())))
	if err == nil {
		t.Skip("temp dir is on btrfs")
	}
	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "sync", serr.Op)
	assert.Empty(t, serr.Path)
	assert.NotZero(t, serr.Errno)

	var stat unix.Stat_t
	assert.NoError(t, unix.Fstat(int(f.Fd()), &stat))
}

func openFdCount(t *testing.T) int {
	t.Helper()
	ents, err := os.ReadDir("/proc/self/fd")
	require.NoError(t, err)
	return len(ents)
}

func TestSyncPathLeavesNoDescriptorOpen(t *testing.T) {
	dir := t.TempDir()
	before := openFdCount(t)

	// Whether the ioctl fails (non-btrfs temp dir) or succeeds, the
	// descriptor opened from the path must be closed on the way out.
	_ = Sync(PathTarget(dir))
	assert.Equal(t, before, openFdCount(t))

	_, _ = StartSync(PathTarget(dir))
	assert.Equal(t, before, openFdCount(t))

	_ = WaitSync(PathTarget(dir), 0)
	assert.Equal(t, before, openFdCount(t))

	// Open failure never acquires anything to leak.
	_ = Sync(PathTarget(dir + "/does-not-exist"))
	assert.Equal(t, before, openFdCount(t))
}

func TestWaitSyncBadTarget(t *testing.T) {
	err := WaitSync(FdTarget(-5), 0)
	assert.ErrorIs(t, err, ErrFdNegative)
}

func TestStartSyncBadTarget(t *testing.T) {
	_, err := StartSync(FdTarget(int64(maxFd) + 1))
	assert.ErrorIs(t, err, ErrFdOverflow)
}

// findBtrfs returns a mounted btrfs filesystem to run kernel-facing tests
// against, or skips the test.
func findBtrfs(t *testing.T) *Filesystem {
	t.Helper()
	fss, err := ListFilesystems()
	if err != nil || len(fss) == 0 {
		t.Skip("no mounted btrfs filesystem")
	}
	if os.Geteuid() != 0 {
		t.Skip("requires root")
	}
	return fss[0]
}

func TestSyncLifecycle(t *testing.T) {
	fs := findBtrfs(t)

	require.NoError(t, fs.Sync())

	transid, err := fs.StartSync()
	require.NoError(t, err)
	assert.NotZero(t, transid)
	require.NoError(t, fs.WaitSync(transid))

	// Zero waits for the current transaction; with nothing open this
	// returns immediately.
	require.NoError(t, fs.WaitSync(0))
}

func TestSyncDescriptorTarget(t *testing.T) {
	fs := findBtrfs(t)
	f, err := os.Open(fs.Path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, Sync(FdTarget(int64(f.Fd()))))

	transid, err := StartSync(FdTarget(int64(f.Fd())))
	require.NoError(t, err)
	assert.NotZero(t, transid)
	require.NoError(t, WaitSync(FdTarget(int64(f.Fd())), transid))

	// The caller-owned descriptor survives every operation.
	var stat unix.Stat_t
	require.NoError(t, unix.Fstat(int(f.Fd()), &stat))
}

func TestErrnoOf(t *testing.T) {
	assert.Equal(t, unix.ENOTTY, errnoOf(unix.ENOTTY))
	assert.Equal(t, unix.ENOENT, errnoOf(&os.PathError{Op: "open", Err: unix.ENOENT}))
	assert.Zero(t, errnoOf(errors.New("not a syscall error")))
}
