package messages

// System messages for internal operations.
const (
	// FetchRequestFailedFmt formats request construction errors.
	FetchRequestFailedFmt            = "build request for %s: %w"
	FetchDownloadFailedFmt           = "download %s: %w"
	FetchDownloadUnexpectedStatusFmt = "download %s: unexpected status %s"
	FetchDownloadTooLargeFmt         = "download %s: response too large (%d bytes > limit %d bytes)"
	FetchDownloadTimeoutFmt          = "download %s: request timed out\n\nRemediation:\n  - Check your internet connection\n  - If behind a proxy, ensure HTTP_PROXY/HTTPS_PROXY are set\n  - Raise [network].timeout_seconds in config.toml\n  - Retry the command"
	FetchParseDocumentFmt            = "parse %s: %w"
	FetchTruncateFileFmt             = "truncate %s: %w"

	// CatalogScopeNotFound is the sentinel text for a missing data-moniker scope.
	CatalogScopeNotFound          = "unable to read catalog for this version"
	CatalogScopeNotFoundFmt       = "%w: no element with data-moniker=%q"
	CatalogChannelIDRequired      = "channel id is required"
	CatalogDocumentRequired       = "catalog document is required"
	CatalogSkipMissingTable       = "no component table follows the heading"
	CatalogSkipEmptyTable         = "component table has no rows with an id"
	CatalogSkipMissingIDParagraph = "no id paragraph follows the heading"
	CatalogSkipEmptyID            = "id paragraph is empty"
	CatalogSkipMissingDescription = "no description paragraph follows the id paragraph"

	// LayoutReadDescriptorFmt formats Layout.json read errors.
	LayoutReadDescriptorFmt  = "read %s: %w"
	LayoutParseDescriptorFmt = "parse %s: %w"
	LayoutNotReady           = "layout folder not ready"
	LayoutReadArchiveFmt     = "read archive %s: %w"
	LayoutRemoveCleanedFmt   = "remove cleaned archive %s: %w"
	LayoutInspectFolderFmt   = "inspect %s: %w"
	LayoutResetFolderFmt     = "empty %s: %w"

	// CommandFolderRequired is returned when no layout folder is given.
	CommandFolderRequired = "layout folder is required"
	CommandUnknownModeFmt = "unknown installer mode %q"
	CommandEmptyValueFmt  = "%s value must not be empty"

	// InstallerBusy is the sentinel text for a folder locked by another run.
	InstallerBusy               = "another operation is in progress"
	InstallerBusyFmt            = "%w: %s is in use by another vsl process"
	InstallerDownloaderRequired = "installer downloader url is required"
	InstallerCreateTempFileFmt  = "create temp file: %w"
	InstallerSyncTempFileFmt    = "sync temp file: %w"
	InstallerCloseTempFileFmt   = "close temp file: %w"
	InstallerChmodFmt           = "chmod bootstrapper: %w"
	InstallerSplitArgsFmt       = "split installer arguments %q: %w"
	InstallerBackslashFmt       = "installer arguments %q contain a backslash, which is only supported on Windows"
	InstallerStartFmt           = "start installer %s: %w"
	InstallerExitFmt            = "installer exited with error: %w"
	InstallerDownloadingFmt     = "Downloading bootstrapper %s...\n"
	InstallerDownloadedFmt      = "Downloaded bootstrapper (%d bytes)\n"
	InstallerCreateLockDirFmt   = "create lock dir: %w"
	InstallerOpenLockFmt        = "open lock %s: %w"
	InstallerLockFmt            = "lock %s: %w"
)
