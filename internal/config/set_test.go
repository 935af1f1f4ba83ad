package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetValue_FromEmpty(t *testing.T) {
	out, err := SetValue(nil, "config.toml", "layout.channel", "vs-2022")
	require.NoError(t, err)

	cfg, err := ParseConfig(out, "config.toml")
	require.NoError(t, err)
	assert.Equal(t, "vs-2022", cfg.Layout.Channel)
}

func TestSetValue_TypedValues(t *testing.T) {
	content := []byte("[layout]\nchannel = \"vs-2019\"\n")

	out, err := SetValue(content, "config.toml", "network.timeout_seconds", "45")
	require.NoError(t, err)
	out, err = SetValue(out, "config.toml", "layout.languages", "en-US, zh-CN,,")
	require.NoError(t, err)

	cfg, err := ParseConfig(out, "config.toml")
	require.NoError(t, err)
	assert.Equal(t, "vs-2019", cfg.Layout.Channel)
	assert.Equal(t, 45, cfg.Network.TimeoutSeconds)
	assert.Equal(t, []string{"en-US", "zh-CN"}, cfg.Layout.Languages)
}

func TestSetValue_EmptyRemovesKey(t *testing.T) {
	content := []byte("[layout]\nchannel = \"vs-2019\"\ndownload_folder = \"/l\"\n")

	out, err := SetValue(content, "config.toml", "layout.channel", "")
	require.NoError(t, err)
	cfg, err := ParseConfig(out, "config.toml")
	require.NoError(t, err)
	assert.Empty(t, cfg.Layout.Channel)
	assert.Equal(t, "/l", cfg.Layout.DownloadFolder)

	_, err = SetValue(out, "config.toml", "layout.channel", "")
	require.NoError(t, err, "removing an absent key is a no-op")
}

func TestSetValue_Errors(t *testing.T) {
	_, err := SetValue(nil, "config.toml", "layout.folder", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
	assert.Contains(t, err.Error(), "layout.download_folder")

	_, err = SetValue(nil, "config.toml", "network.timeout_seconds", "soon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid value "soon"`)

	_, err = SetValue(nil, "config.toml", "network.max_download_mb", "-3")
	require.Error(t, err)

	_, err = SetValue([]byte("[layout\n"), "config.toml", "layout.channel", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config.toml")

	_, err = SetValue([]byte("[layout]\nbogus = 1\n"), "config.toml", "layout.channel", "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigValidation))
}

func TestSetFile_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app", "config.toml")

	require.NoError(t, SetFile(path, "layout.download_folder", "~/layouts"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "download_folder"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "~/layouts", cfg.Layout.DownloadFolder)
}

func TestFieldKeys(t *testing.T) {
	keys := FieldKeys()
	assert.Len(t, keys, len(Fields()))
	for _, key := range keys {
		_, ok := LookupField(key)
		assert.True(t, ok, key)
	}
}
