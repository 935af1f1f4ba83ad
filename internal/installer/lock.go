package installer

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/conn-castle/vs-layout/internal/messages"
)

// ErrBusy reports that another process holds the lock for a download folder.
var ErrBusy = errors.New(messages.InstallerBusy)

// errWouldBlock is returned by tryLockFn when the lock is held elsewhere.
var errWouldBlock = errors.New("lock held")

var (
	tryLockFn = tryLockFile
	unlockFn  = unlockFile
)

// FolderLock is an exclusive advisory lock on one download folder.
type FolderLock struct {
	file *os.File
}

// LockFolder acquires the lock for folder without waiting. Lock files live
// in locksDir, named after a hash of the folder's absolute path.
func LockFolder(locksDir string, folder string) (*FolderLock, error) {
	if strings.TrimSpace(folder) == "" {
		return nil, errors.New(messages.CommandFolderRequired)
	}
	if err := os.MkdirAll(locksDir, 0o755); err != nil {
		return nil, fmt.Errorf(messages.InstallerCreateLockDirFmt, err)
	}
	path := filepath.Join(locksDir, lockName(folder))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf(messages.InstallerOpenLockFmt, path, err)
	}
	if err := tryLockFn(file); err != nil {
		_ = file.Close()
		if errors.Is(err, errWouldBlock) {
			return nil, fmt.Errorf(messages.InstallerBusyFmt, ErrBusy, folder)
		}
		return nil, fmt.Errorf(messages.InstallerLockFmt, path, err)
	}
	return &FolderLock{file: file}, nil
}

// Release unlocks and closes the lock file.
func (l *FolderLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	if err := unlockFn(l.file); err != nil {
		_ = l.file.Close()
		return err
	}
	return l.file.Close()
}

func lockName(folder string) string {
	if abs, err := filepath.Abs(folder); err == nil {
		folder = abs
	}
	folder = filepath.Clean(folder)
	sum := sha256.Sum256([]byte(strings.ToLower(folder)))
	return hex.EncodeToString(sum[:8]) + ".lock"
}
