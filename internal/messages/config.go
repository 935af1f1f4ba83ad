package messages

// Config messages for settings, channel list and language list loading.
const (
	// ConfigReadFileFmt formats settings read errors.
	ConfigReadFileFmt           = "read config %s: %w"
	ConfigInvalidConfigFmt      = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt   = "%s: unrecognized keys: %v"
	ConfigValidationGuidance    = "(run 'vsl config show' to inspect the file)"
	ConfigTimeoutInvalidFmt     = "%s: network.timeout_seconds must be zero or positive"
	ConfigMaxDownloadInvalidFmt = "%s: network.max_download_mb must be zero or positive"
	ConfigLanguageEmptyFmt      = "%s: layout.languages must not contain empty keys"

	ConfigResolveAppDirFmt = "resolve settings dir: %w"
	ConfigCreateAppDirFmt  = "create settings dir %s: %w"
	ConfigExpandPathFmt    = "expand %s: %w"
	ConfigWriteFileFmt     = "write %s: %w"

	ConfigReadChannelsFmt      = "read channel list %s: %w"
	ConfigParseChannelsFmt     = "parse channel list %s: %w"
	ConfigSeedChannelsFmt      = "seed channel list %s: %w"
	ConfigChannelMissingURLFmt = "%s: channel %d (%q) needs both DetailUrl and DownloaderUrl"
	ConfigParseLanguagesFmt    = "parse embedded language list: %w"

	ConfigSetUnknownKeyFmt   = "unknown config key %q (known keys: %s)"
	ConfigSetInvalidValueFmt = "invalid value %q for %s: %w"
	ConfigSetParseFmt        = "parse %s: %w"
	ConfigSetRenderFmt       = "render %s: %w"
)
