// Package config loads vsl settings, the persisted channel list and the
// bundled language list.
package config

import (
	"time"
)

// Config is the content of config.toml. Every key is optional.
type Config struct {
	Layout  LayoutConfig  `toml:"layout"`
	Network NetworkConfig `toml:"network"`
}

// LayoutConfig holds defaults for download, update and clean.
type LayoutConfig struct {
	// DownloadFolder may start with ~.
	DownloadFolder string `toml:"download_folder,omitempty"`
	// Channel is a channel name, list index or id such as "vs-2022".
	Channel   string   `toml:"channel,omitempty"`
	Languages []string `toml:"languages,omitempty"`
}

// NetworkConfig tunes catalog and bootstrapper downloads. Zero values mean
// the fetch defaults.
type NetworkConfig struct {
	TimeoutSeconds int    `toml:"timeout_seconds,omitempty"`
	MaxDownloadMB  int    `toml:"max_download_mb,omitempty"`
	UserAgent      string `toml:"user_agent,omitempty"`
}

// Timeout returns the request timeout, or 0 for the default.
func (n NetworkConfig) Timeout() time.Duration {
	return time.Duration(n.TimeoutSeconds) * time.Second
}

// MaxBytes returns the download size limit, or 0 for the default.
func (n NetworkConfig) MaxBytes() int64 {
	return int64(n.MaxDownloadMB) * 1024 * 1024
}
