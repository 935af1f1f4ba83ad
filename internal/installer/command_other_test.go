//go:build !windows

package installer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/vs-layout/internal/testutil"
)

func TestCommand_SplitsQuotedPaths(t *testing.T) {
	cmd, err := command(context.Background(), "/tmp/vs_bootstrapper.exe", `--layout "/data/my layout" --clean "/data/my layout/Archive/a/Catalog.json"`)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/tmp/vs_bootstrapper.exe",
		"--layout", "/data/my layout",
		"--clean", "/data/my layout/Archive/a/Catalog.json",
	}, cmd.Args)
}

func TestCommand_UnterminatedQuote(t *testing.T) {
	_, err := command(context.Background(), "/tmp/b.exe", `--layout "/data`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split installer arguments")
}

func TestCommand_RunsWithSplitArgs(t *testing.T) {
	dir := t.TempDir()
	stub, argsFile := testutil.WriteRecorder(t, dir, "vs_bootstrapper.exe", 0)
	layoutDir := filepath.Join(dir, "my layout")

	cmd, err := command(context.Background(), stub, `--layout "`+layoutDir+`" --lang en-US`)
	require.NoError(t, err)
	require.NoError(t, cmd.Run())
	assert.Equal(t, []string{"--layout", layoutDir, "--lang", "en-US"}, testutil.ReadArgs(t, argsFile))
}

func TestCommand_RejectsBackslash(t *testing.T) {
	_, err := command(context.Background(), "/tmp/b.exe", `--layout "/data/a\b"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backslash")
}
