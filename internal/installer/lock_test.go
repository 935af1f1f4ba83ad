package installer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockFolder_RefusesSecondHolder(t *testing.T) {
	locks := filepath.Join(t.TempDir(), "locks")
	folder := t.TempDir()

	first, err := LockFolder(locks, folder)
	require.NoError(t, err)

	_, err = LockFolder(locks, folder)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBusy))
	assert.Contains(t, err.Error(), "another operation is in progress")

	other, err := LockFolder(locks, t.TempDir())
	require.NoError(t, err, "other folders are independent")
	require.NoError(t, other.Release())

	require.NoError(t, first.Release())
	again, err := LockFolder(locks, folder)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestLockFolder_RequiresFolder(t *testing.T) {
	_, err := LockFolder(t.TempDir(), "")
	require.Error(t, err)
}

func TestLockFolder_LockError(t *testing.T) {
	orig := tryLockFn
	tryLockFn = func(*os.File) error { return errors.New("not supported") }
	t.Cleanup(func() { tryLockFn = orig })

	_, err := LockFolder(t.TempDir(), t.TempDir())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrBusy))
	assert.Contains(t, err.Error(), "not supported")
}

func TestLockName_StableForEquivalentPaths(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, lockName(dir), lockName(dir+string(filepath.Separator)+"."))
	assert.NotEqual(t, lockName(dir), lockName(filepath.Join(dir, "x")))
}

func TestFolderLock_ReleaseNil(t *testing.T) {
	var l *FolderLock
	assert.NoError(t, l.Release())
}
