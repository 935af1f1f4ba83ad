package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"testing"

	"github.com/conn-castle/vs-layout/internal/installer"
	"github.com/conn-castle/vs-layout/internal/testutil"
)

func TestMainVersion(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"vsl", "--version"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Fatalf("expected version output, got %q", out.String())
	}
}

func TestMainUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	err := execute([]string{"vsl", "unknown"}, &out, &out)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestMainCallsExecute(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"vsl", "--version"}
	main()
}

func TestRunMainSuccess(t *testing.T) {
	var out bytes.Buffer
	called := false
	runMain([]string{"vsl", "--version"}, &out, &out, func(code int) {
		called = true
	})
	if called {
		t.Fatalf("unexpected exit")
	}
}

func TestRunMainError(t *testing.T) {
	var out bytes.Buffer
	code := 0
	runMain([]string{"vsl", "unknown"}, &out, &out, func(exitCode int) {
		code = exitCode
	})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "unknown command") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestRunMain_SilentExit(t *testing.T) {
	orig := executeFunc
	defer func() { executeFunc = orig }()
	executeFunc = func([]string, io.Writer, io.Writer) error {
		return &SilentExitError{Code: 4}
	}

	var out bytes.Buffer
	code := 0
	runMain([]string{"vsl"}, &out, &out, func(c int) { code = c })
	if code != 4 {
		t.Fatalf("expected exit 4, got %d", code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestRunMain_InstallerExitCodePassesThrough(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	newTestEnv(t)
	exitErr := exec.Command(testutil.WriteStubWithExit(t, t.TempDir(), "vs_bootstrapper", 3)).Run()
	runInstaller = func(context.Context, *installer.Installer, string, string) error {
		return exitErr
	}

	folder := t.TempDir()
	var out bytes.Buffer
	code := 0
	runMain([]string{"vsl", "download", "-c", "1", "-f", folder, "--yes", "--add", "Microsoft.VisualStudio.Workload.Azure"}, &out, &out, func(c int) { code = c })
	if code != 3 {
		t.Fatalf("expected exit 3, got %d (output %q)", code, out.String())
	}
}

func TestRunMain_ErrorIsPrinted(t *testing.T) {
	orig := executeFunc
	defer func() { executeFunc = orig }()
	executeFunc = func([]string, io.Writer, io.Writer) error {
		return errors.New("boom")
	}

	var out bytes.Buffer
	code := 0
	runMain([]string{"vsl"}, &out, &out, func(c int) { code = c })
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(out.String(), "boom") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origDate })

	Version, Commit, BuildDate = "v1.0.0", "unknown", "unknown"
	if got := versionString(); got != "v1.0.0" {
		t.Fatalf("unexpected version %q", got)
	}
	Commit, BuildDate = "abc123", "2026-01-02"
	if got := versionString(); got != "v1.0.0 (commit abc123, built 2026-01-02)" {
		t.Fatalf("unexpected version %q", got)
	}
}
