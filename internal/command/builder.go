// Package command builds installer argument strings.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/vs-layout/internal/messages"
)

// Mode selects the installer operation.
type Mode string

// Installer operations.
const (
	ModeDownload Mode = "download"
	ModeUpdate   Mode = "update"
	ModeClean    Mode = "clean"
)

// Flags appended to every download.
const (
	FlagIncludeRecommended = "--includeRecommended"
	FlagIncludeOptional    = "--includeOptional"
)

// Request describes one installer invocation.
type Request struct {
	Mode   Mode
	Folder string
	// Languages are language keys in selection order.
	Languages []string
	// ComponentIDs are selected leaf ids in tree order.
	ComponentIDs []string
	// CleanCatalogs are archived Catalog.json paths, used by ModeClean only.
	CleanCatalogs []string
}

// Build returns the installer argument string for req. Path arguments are
// double-quoted; the result is passed verbatim to the installer.
func Build(req Request) (string, error) {
	if strings.TrimSpace(req.Folder) == "" {
		return "", errors.New(messages.CommandFolderRequired)
	}

	var b strings.Builder
	b.WriteString("--layout ")
	b.WriteString(quote(req.Folder))

	switch req.Mode {
	case ModeDownload:
		for _, lang := range req.Languages {
			if err := appendValue(&b, "--lang", lang); err != nil {
				return "", err
			}
		}
		for _, id := range req.ComponentIDs {
			if err := appendValue(&b, "--add", id); err != nil {
				return "", err
			}
		}
		b.WriteString(" " + FlagIncludeRecommended + " " + FlagIncludeOptional)
	case ModeUpdate:
	case ModeClean:
		for _, path := range req.CleanCatalogs {
			if strings.TrimSpace(path) == "" {
				return "", fmt.Errorf(messages.CommandEmptyValueFmt, "--clean")
			}
			b.WriteString(" --clean ")
			b.WriteString(quote(path))
		}
	default:
		return "", fmt.Errorf(messages.CommandUnknownModeFmt, req.Mode)
	}
	return b.String(), nil
}

func appendValue(b *strings.Builder, flag string, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf(messages.CommandEmptyValueFmt, flag)
	}
	b.WriteString(" ")
	b.WriteString(flag)
	b.WriteString(" ")
	b.WriteString(value)
	return nil
}

func quote(path string) string {
	return `"` + path + `"`
}
