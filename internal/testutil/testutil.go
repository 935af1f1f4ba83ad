// Package testutil provides fake installer executables for tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// RecorderScript returns a shell script that appends each argument it
// receives to argsFile, one per line, and exits with exitCode.
func RecorderScript(argsFile string, exitCode int) []byte {
	return []byte(fmt.Sprintf("#!/bin/sh\nfor arg in \"$@\"; do\n  printf '%%s\\n' \"$arg\" >> '%s'\ndone\nexit %d\n", argsFile, exitCode))
}

// ExitScript returns a shell script that exits with exitCode.
func ExitScript(exitCode int) []byte {
	return []byte(fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
}

// WriteStubWithExit writes an executable ExitScript stub and returns its path.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, ExitScript(exitCode), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

// WriteRecorder writes an executable RecorderScript stub and returns its path
// together with the file it records arguments to.
func WriteRecorder(t *testing.T, dir string, name string, exitCode int) (string, string) {
	t.Helper()
	path := filepath.Join(dir, name)
	argsFile := filepath.Join(dir, name+".args")
	if err := os.WriteFile(path, RecorderScript(argsFile, exitCode), 0o755); err != nil {
		t.Fatalf("write recorder: %v", err)
	}
	return path, argsFile
}

// ReadArgs returns the arguments recorded in argsFile. A missing file means
// the stub ran with no arguments or never ran.
func ReadArgs(t *testing.T, argsFile string) []string {
	t.Helper()
	data, err := os.ReadFile(argsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("read recorded args: %v", err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}
