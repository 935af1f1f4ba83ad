// Package installer downloads the installer bootstrapper and runs it with a
// built argument string.
package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/conn-castle/vs-layout/internal/messages"
)

// Downloader fetches url into dest and returns the bytes written.
type Downloader interface {
	ToFile(ctx context.Context, url string, dest *os.File) (int64, error)
}

var (
	osCreateTemp = os.CreateTemp
	osChmod      = os.Chmod
	osRemove     = os.Remove
	runCommand   = func(cmd *exec.Cmd) error { return cmd.Run() }
)

// Installer runs one bootstrapper at a time. The zero value writes nowhere.
type Installer struct {
	Downloader Downloader
	// Progress receives download progress lines; nil discards them.
	Progress io.Writer
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
}

// Run downloads the bootstrapper from downloaderURL into a temporary
// executable, runs it with args and waits for it to exit. The temporary file
// is removed afterwards. A non-zero exit is returned wrapping *exec.ExitError.
func (i *Installer) Run(ctx context.Context, downloaderURL string, args string) error {
	if strings.TrimSpace(downloaderURL) == "" {
		return errors.New(messages.InstallerDownloaderRequired)
	}
	path, err := i.fetchBootstrapper(ctx, downloaderURL)
	if err != nil {
		return err
	}
	defer func() { _ = osRemove(path) }()

	cmd, err := command(ctx, path, args)
	if err != nil {
		return err
	}
	cmd.Stdin = i.Stdin
	cmd.Stdout = i.Stdout
	cmd.Stderr = i.Stderr

	if err := runCommand(cmd); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf(messages.InstallerExitFmt, err)
		}
		return fmt.Errorf(messages.InstallerStartFmt, path, err)
	}
	return nil
}

// fetchBootstrapper writes the bootstrapper to a new temporary file and makes
// it executable. The file is removed on failure.
func (i *Installer) fetchBootstrapper(ctx context.Context, url string) (string, error) {
	tmp, err := osCreateTemp("", "vs_bootstrapper-*.exe")
	if err != nil {
		return "", fmt.Errorf(messages.InstallerCreateTempFileFmt, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = osRemove(tmpName)
		}
	}()

	progress := i.Progress
	if progress == nil {
		progress = io.Discard
	}
	_, _ = fmt.Fprintf(progress, messages.InstallerDownloadingFmt, url)
	n, err := i.Downloader.ToFile(ctx, url, tmp)
	if err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf(messages.InstallerSyncTempFileFmt, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf(messages.InstallerCloseTempFileFmt, err)
	}
	if err := osChmod(tmpName, 0o755); err != nil {
		return "", fmt.Errorf(messages.InstallerChmodFmt, err)
	}
	_, _ = fmt.Fprintf(progress, messages.InstallerDownloadedFmt, n)
	committed = true
	return tmpName, nil
}
