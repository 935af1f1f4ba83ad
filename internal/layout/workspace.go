package layout

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/conn-castle/vs-layout/internal/messages"
)

// ErrNotReady reports that a folder lacks the files an operation needs.
var ErrNotReady = errors.New(messages.LayoutNotReady)

// Workspace is an offline layout download folder.
type Workspace struct {
	Folder string
}

// ArchiveFolder returns the folder holding superseded package catalogs.
func (w Workspace) ArchiveFolder() string {
	if strings.TrimSpace(w.Folder) == "" {
		return ""
	}
	return filepath.Join(w.Folder, ArchiveDir)
}

// HasCatalog reports whether the folder contains a layout Catalog.json.
func (w Workspace) HasCatalog() bool {
	if strings.TrimSpace(w.Folder) == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(w.Folder, CatalogFile))
	return err == nil && !info.IsDir()
}

// CanUpdate reports whether an existing layout can be updated in place.
func (w Workspace) CanUpdate() bool {
	return w.HasCatalog()
}

// CanClean reports whether the layout has archived catalogs to clean.
func (w Workspace) CanClean() (bool, error) {
	if !w.HasCatalog() {
		return false, nil
	}
	catalogs, err := w.ArchivedCatalogs()
	if err != nil {
		return false, err
	}
	return len(catalogs) > 0, nil
}

// ArchivedCatalogs returns, for each Archive subfolder in name order, the
// shallowest Catalog.json beneath it. Subfolders without one are skipped.
func (w Workspace) ArchivedCatalogs() ([]string, error) {
	archive := w.ArchiveFolder()
	if archive == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(archive)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf(messages.LayoutReadArchiveFmt, archive, err)
	}

	var catalogs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		found, err := shallowestFile(filepath.Join(archive, entry.Name()), CatalogFile)
		if err != nil {
			return nil, err
		}
		if found != "" {
			catalogs = append(catalogs, found)
		}
	}
	return catalogs, nil
}

// RemoveCleaned deletes every archive subfolder that holds a
// Catalog_cleaned.json, meaning the installer already cleaned it. It returns
// the removed folders.
func (w Workspace) RemoveCleaned() ([]string, error) {
	archive := w.ArchiveFolder()
	if archive == "" {
		return nil, nil
	}
	if _, err := os.Stat(archive); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf(messages.LayoutReadArchiveFmt, archive, err)
	}

	var dirs []string
	err := filepath.WalkDir(archive, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == CleanedCatalogFile {
			dirs = append(dirs, filepath.Dir(path))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(messages.LayoutReadArchiveFmt, archive, err)
	}

	var removed []string
	for _, dir := range dirs {
		if dir == archive {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			return removed, fmt.Errorf(messages.LayoutRemoveCleanedFmt, dir, err)
		}
		removed = append(removed, dir)
	}
	return removed, nil
}

// IsEmpty reports whether the folder is missing or has no entries.
func (w Workspace) IsEmpty() (bool, error) {
	entries, err := os.ReadDir(w.Folder)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, fmt.Errorf(messages.LayoutInspectFolderFmt, w.Folder, err)
	}
	return len(entries) == 0, nil
}

// Reset removes everything in the folder and recreates it empty.
func (w Workspace) Reset() error {
	if strings.TrimSpace(w.Folder) == "" {
		return errors.New(messages.CommandFolderRequired)
	}
	if err := os.RemoveAll(w.Folder); err != nil {
		return fmt.Errorf(messages.LayoutResetFolderFmt, w.Folder, err)
	}
	if err := os.MkdirAll(w.Folder, 0o755); err != nil {
		return fmt.Errorf(messages.LayoutResetFolderFmt, w.Folder, err)
	}
	return nil
}

// shallowestFile returns the match for name with the fewest path elements
// under root, breaking ties by path.
func shallowestFile(root string, name string) (string, error) {
	var matches []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == name {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf(messages.LayoutReadArchiveFmt, root, err)
	}
	if len(matches) == 0 {
		return "", nil
	}
	sort.SliceStable(matches, func(i, j int) bool {
		di := strings.Count(matches[i], string(filepath.Separator))
		dj := strings.Count(matches[j], string(filepath.Separator))
		if di != dj {
			return di < dj
		}
		return matches[i] < matches[j]
	})
	return matches[0], nil
}
