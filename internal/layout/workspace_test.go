package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDescriptor(t *testing.T) {
	dir := t.TempDir()

	d, err := LoadDescriptor(dir)
	require.NoError(t, err)
	assert.Nil(t, d)

	writeFile(t, filepath.Join(dir, DescriptorFile), `{
  "installChannelUri": ".\\ChannelManifest.json",
  "channelUri": "https://aka.ms/vs/17/release/channel",
  "add": ["Microsoft.VisualStudio.Workload.Azure;includeRecommended"],
  "addProductLang": ["en-US"]
}`)
	d, err = LoadDescriptor(dir)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "https://aka.ms/vs/17/release/channel", d.ChannelURI)
	assert.Equal(t, []string{"Microsoft.VisualStudio.Workload.Azure;includeRecommended"}, d.Add)
	assert.Equal(t, []string{"en-US"}, d.AddProductLang)

	writeFile(t, filepath.Join(dir, DescriptorFile), `{not json`)
	_, err = LoadDescriptor(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), DescriptorFile)
}

func TestWorkspace_Readiness(t *testing.T) {
	dir := t.TempDir()
	ws := Workspace{Folder: dir}

	assert.False(t, ws.CanUpdate())
	ok, err := ws.CanClean()
	require.NoError(t, err)
	assert.False(t, ok)

	writeFile(t, filepath.Join(dir, CatalogFile), "{}")
	assert.True(t, ws.CanUpdate())
	ok, err = ws.CanClean()
	require.NoError(t, err)
	assert.False(t, ok, "no archive folder yet")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, ArchiveDir, "empty"), 0o755))
	ok, err = ws.CanClean()
	require.NoError(t, err)
	assert.False(t, ok, "archive without catalogs")

	writeFile(t, filepath.Join(dir, ArchiveDir, "b1", "nested", CatalogFile), "{}")
	ok, err = ws.CanClean()
	require.NoError(t, err)
	assert.True(t, ok)

	assert.False(t, Workspace{}.CanUpdate())
	assert.Equal(t, "", Workspace{}.ArchiveFolder())
}

func TestWorkspace_ArchivedCatalogs(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, ArchiveDir)
	writeFile(t, filepath.Join(archive, "b", "deep", "x", CatalogFile), "{}")
	writeFile(t, filepath.Join(archive, "b", "deep", CatalogFile), "{}")
	writeFile(t, filepath.Join(archive, "a", CatalogFile), "{}")
	writeFile(t, filepath.Join(archive, "c", "readme.txt"), "")
	writeFile(t, filepath.Join(archive, "loose.json"), "{}")

	got, err := Workspace{Folder: dir}.ArchivedCatalogs()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(archive, "a", CatalogFile),
		filepath.Join(archive, "b", "deep", CatalogFile),
	}, got)
}

func TestWorkspace_RemoveCleaned(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, ArchiveDir)
	writeFile(t, filepath.Join(archive, "old", CleanedCatalogFile), "{}")
	writeFile(t, filepath.Join(archive, "old", CatalogFile), "{}")
	writeFile(t, filepath.Join(archive, "keep", CatalogFile), "{}")

	removed, err := Workspace{Folder: dir}.RemoveCleaned()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(archive, "old")}, removed)

	_, err = os.Stat(filepath.Join(archive, "old"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(archive, "keep", CatalogFile))
	assert.NoError(t, err)

	removed, err = Workspace{Folder: t.TempDir()}.RemoveCleaned()
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestWorkspace_IsEmptyAndReset(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "layout")
	ws := Workspace{Folder: dir}

	empty, err := ws.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty, "missing folder counts as empty")

	writeFile(t, filepath.Join(dir, "sub", "file.bin"), "x")
	empty, err = ws.IsEmpty()
	require.NoError(t, err)
	assert.False(t, empty)

	require.NoError(t, ws.Reset())
	empty, err = ws.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.Error(t, Workspace{}.Reset())
}

func TestSelectionDiff(t *testing.T) {
	assert.Equal(t, "", SelectionDiff(nil, []string{"en-US"}, []string{"A"}))

	d := &Descriptor{Add: []string{"A;1", "B;1"}, AddProductLang: []string{"en-US"}}
	assert.Equal(t, "", SelectionDiff(d, []string{"en-us"}, []string{"B", "A"}))

	diff := SelectionDiff(d, []string{"en-US", "zh-CN"}, []string{"A", "C"})
	assert.Contains(t, diff, "--- "+DescriptorFile)
	assert.Contains(t, diff, "+++ planned")
	assert.Contains(t, diff, "---add B")
	assert.Contains(t, diff, "+--add C")
	assert.Contains(t, diff, "+--lang zh-cn")
}
