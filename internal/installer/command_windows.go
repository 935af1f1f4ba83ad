//go:build windows

package installer

import (
	"context"
	"os/exec"
	"syscall"
)

// command passes args to the bootstrapper verbatim as the rest of its
// command line.
func command(ctx context.Context, path string, args string) (*exec.Cmd, error) {
	cmd := exec.CommandContext(ctx, path)
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: syscall.EscapeArg(path) + " " + args}
	return cmd, nil
}
