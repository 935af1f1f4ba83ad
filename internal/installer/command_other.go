//go:build !windows

package installer

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/google/shlex"

	"github.com/conn-castle/vs-layout/internal/messages"
)

// command splits args with POSIX shell quoting rules. Backslashes are
// refused because shlex would treat them as escapes and alter the path.
func command(ctx context.Context, path string, args string) (*exec.Cmd, error) {
	if strings.Contains(args, `\`) {
		return nil, fmt.Errorf(messages.InstallerBackslashFmt, args)
	}
	argv, err := shlex.Split(args)
	if err != nil {
		return nil, fmt.Errorf(messages.InstallerSplitArgsFmt, args, err)
	}
	return exec.CommandContext(ctx, path, argv...), nil
}
