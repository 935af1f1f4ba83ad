package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse   = "vsl"
	RootShort = "Visual Studio offline layout downloader"
	RootLong  = "vsl reads the Visual Studio workload and component catalog for a channel, lets you pick\n" +
		"components and languages, and drives the installer bootstrapper to create, update or clean\n" +
		"an offline layout folder."
	RootFlagQuiet   = "Suppress progress output"
	RootFlagNoColor = "Disable colored output"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// ChannelsUse is the channels command name.
	ChannelsUse       = "channels"
	ChannelsShort     = "List configured Visual Studio channels"
	ChannelsHeaderFmt = "Channels (%s):\n"
	ChannelsRowFmt    = "  %2d  %-10s %s\n"
	ChannelsDetailFmt = "              detail:     %s\n              downloader: %s\n"
	ChannelNoIDLabel  = "(no id)"

	// LanguagesUse is the languages command name.
	LanguagesUse    = "languages"
	LanguagesShort  = "List installer language packs"
	LanguagesRowFmt = "  %-8s %s\n"

	// ComponentsUse is the components command name.
	ComponentsUse        = "components"
	ComponentsShort      = "Fetch and list the workloads and components of a channel"
	ComponentsGroupFmt   = "%s\n"
	ComponentsLeafFmt    = "%s[%s] %s  (%s)\n"
	ComponentsSelected   = "x"
	ComponentsLangsFmt   = "Languages from layout: %s\n"
	ComponentsSummaryFmt = "%d components, %d selected\n"

	// DownloadUse is the download command name.
	DownloadUse   = "download"
	DownloadShort = "Download a new offline layout"
	UpdateUse     = "update"
	UpdateShort   = "Update an existing offline layout"
	CleanUse      = "clean"
	CleanShort    = "Remove superseded packages recorded in the layout Archive folder"

	FlagChannel = "Channel name, list index, or id (for example vs-2022)"
	FlagFolder  = "Layout download folder"
	FlagLang    = "Language key to include (repeatable)"
	FlagAdd     = "Component or workload id to add (repeatable)"
	FlagDryRun  = "Print the installer command instead of running it"
	FlagYes     = "Do not prompt; use flags, the existing layout, and config defaults"
	FlagReset   = "Empty a non-empty download folder before downloading"

	// ConfigUse is the config command name.
	ConfigUse        = "config"
	ConfigShort      = "Show or edit vsl settings"
	ConfigShowUse    = "show"
	ConfigShowShort  = "Print the settings file path and contents"
	ConfigSetUse     = "set <key> <value>"
	ConfigSetShort   = "Set a settings key (for example layout.download_folder)"
	ConfigPathFmt    = "# %s\n"
	ConfigNoFileFmt  = "# %s (not created yet; defaults in effect)\n"
	ConfigUpdatedFmt = "Set %s in %s\n"

	// ProgressFetchingCatalogFmt is printed while the catalog page is downloaded.
	ProgressFetchingCatalogFmt  = "Fetching component catalog for %s...\n"
	ProgressFetchedCatalogFmt   = "Found %d catalog entries for %s\n"
	ProgressSkippedRecordFmt    = "skipped %q: %s"
	ProgressRemovedCleanedFmt   = "Removed cleaned archive %s\n"
	ProgressReconciledFmt       = "Restored selection from %s\n"
	ProgressResetFolderFmt      = "Emptied %s\n"
	ProgressRunningInstallerFmt = "Running installer: %s\n"
	ProgressInstallerFinished   = "Installer finished"
	ProgressSelectionChanges    = "Selection changes compared to the existing layout:"
	ProgressNoSelectionChanges  = "Selection matches the existing layout."
	ProgressDryRunFmt           = "%s %s\n"

	// WarningVersionMismatchFmt is shown when the layout folder belongs to another version.
	WarningVersionMismatchFmt = "warning: the download folder holds a layout for version %s but the selected channel is version %s"
	WarningPrefix             = "warning: "

	// SessionChannelRequired is returned when no channel can be resolved.
	SessionChannelRequired      = "no channel selected; pass --channel or set layout.channel"
	SessionChannelNotFoundFmt   = "channel %q not found; run 'vsl channels' to list channels"
	SessionChannelNoIDFmt       = "channel %q has no version id in its detail url %s"
	SessionFolderRequired       = "no download folder; pass --folder or set layout.download_folder"
	SessionResolveFolderFmt     = "resolve download folder %s: %w"
	SessionUnknownComponentFmt  = "component %q is not in the %s catalog"
	SessionUnknownLanguageFmt   = "unknown language %q; run 'vsl languages' to list keys"
	SessionNoComponentsSelected = "no components selected"
	SessionEmptyCatalogFmt      = "the %s catalog has no selectable components"
	SessionUpdateNotReadyFmt    = "%s is not a layout folder (missing Catalog.json); run 'vsl download' first"
	SessionCleanNotReadyFmt     = "%s has no archived catalogs to clean"

	// PromptChannel is the channel select title.
	PromptChannel          = "Visual Studio channel"
	PromptLanguages        = "Languages"
	PromptWorkloads        = "Workloads"
	PromptResetFolderFmt   = "Download folder %s is not empty. Empty it first?"
	PromptSelectionTitle   = "Selection"
	PromptSelectionBodyFmt = "Languages: %s\n\nComponents:\n%s"
	PromptSelectionNone    = "(installer default)"
	PromptExitNoChanges    = "Exited without running the installer."
	WizardRequiresTerminal = "interactive selection requires a terminal; pass --yes with --add/--lang"
)
