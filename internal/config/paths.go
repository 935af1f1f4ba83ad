package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/vs-layout/internal/messages"
)

// EnvHome overrides the settings directory.
const EnvHome = "VSL_HOME"

// appDirName is the settings directory name under the user config dir.
const appDirName = "vs-layout"

var (
	userConfigDir = os.UserConfigDir
	getenv        = os.Getenv
)

// Paths holds resolved paths for settings files and directories.
type Paths struct {
	Root         string
	ConfigPath   string
	ChannelsPath string
	LocksDir     string
}

// DefaultPaths returns the settings paths under root.
func DefaultPaths(root string) Paths {
	return Paths{
		Root:         root,
		ConfigPath:   filepath.Join(root, "config.toml"),
		ChannelsPath: filepath.Join(root, "vs.json"),
		LocksDir:     filepath.Join(root, "locks"),
	}
}

// ResolvePaths returns the settings paths under $VSL_HOME, or under
// <user config dir>/vs-layout when it is unset.
func ResolvePaths() (Paths, error) {
	if home := strings.TrimSpace(getenv(EnvHome)); home != "" {
		root, err := ExpandPath(home)
		if err != nil {
			return Paths{}, err
		}
		return DefaultPaths(root), nil
	}
	base, err := userConfigDir()
	if err != nil {
		return Paths{}, fmt.Errorf(messages.ConfigResolveAppDirFmt, err)
	}
	return DefaultPaths(filepath.Join(base, appDirName)), nil
}

// ExpandPath expands a leading ~ and returns a cleaned absolute path.
// An empty path is returned unchanged.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
	}
	return abs, nil
}
