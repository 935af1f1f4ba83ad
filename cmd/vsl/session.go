package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/vs-layout/internal/catalog"
	"github.com/conn-castle/vs-layout/internal/config"
	"github.com/conn-castle/vs-layout/internal/fetch"
	"github.com/conn-castle/vs-layout/internal/installer"
	"github.com/conn-castle/vs-layout/internal/layout"
	"github.com/conn-castle/vs-layout/internal/messages"
	"github.com/conn-castle/vs-layout/internal/terminal"
	"github.com/conn-castle/vs-layout/internal/wizard"
)

// Package-level hooks replaced in tests.
var (
	resolvePaths  = config.ResolvePaths
	isInteractive = terminal.IsInteractive
	newUI         = func() wizard.UI { return wizard.NewHuhUI() }
	runInstaller  = func(ctx context.Context, inst *installer.Installer, downloaderURL string, args string) error {
		return inst.Run(ctx, downloaderURL, args)
	}
)

// session carries the settings and resources of one layout command.
type session struct {
	cmd       *cobra.Command
	quiet     bool
	paths     config.Paths
	cfg       *config.Config
	channels  []catalog.Channel
	languages []catalog.Language
	client    *fetch.Client

	ui          wizard.UI
	interactive bool

	channel   catalog.Channel
	workspace layout.Workspace
	lock      *installer.FolderLock
}

// openSession loads settings, the channel list and the language list.
// interactive enables prompts when a terminal is attached.
func openSession(cmd *cobra.Command, opts *globalOptions, interactive bool) (*session, error) {
	paths, err := resolvePaths()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(paths.ConfigPath)
	if err != nil {
		return nil, err
	}
	channels, err := config.LoadChannels(paths.ChannelsPath)
	if err != nil {
		return nil, err
	}
	languages, err := config.Languages()
	if err != nil {
		return nil, err
	}
	s := &session{
		cmd:       cmd,
		quiet:     opts != nil && opts.quiet,
		paths:     paths,
		cfg:       cfg,
		channels:  channels,
		languages: languages,
		client: fetch.New(fetch.Options{
			Timeout:   cfg.Network.Timeout(),
			MaxBytes:  cfg.Network.MaxBytes(),
			UserAgent: cfg.Network.UserAgent,
		}),
		interactive: interactive && isInteractive(),
	}
	if s.interactive {
		s.ui = newUI()
	}
	return s, nil
}

// close releases the folder lock.
func (s *session) close() {
	if s.lock != nil {
		_ = s.lock.Release()
		s.lock = nil
	}
}

func (s *session) out() io.Writer {
	return s.cmd.OutOrStdout()
}

// progressf writes a progress line to stderr unless --quiet is set.
func (s *session) progressf(format string, args ...any) {
	if s.quiet {
		return
	}
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

// warn writes a yellow warning line to stderr.
func (s *session) warn(msg string) {
	_, _ = color.New(color.FgYellow).Fprintln(s.cmd.ErrOrStderr(), msg)
}

// resolveChannel selects the channel named by ref, falling back to
// layout.channel and then to an interactive prompt.
func (s *session) resolveChannel(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		ref = strings.TrimSpace(s.cfg.Layout.Channel)
	}
	if ref == "" {
		if !s.interactive {
			return errors.New(messages.SessionChannelRequired)
		}
		ch, err := wizard.ChooseChannel(s.ui, s.channels, 0)
		if err != nil {
			return err
		}
		s.channel = ch
		return nil
	}
	ch, ok := config.FindChannel(s.channels, ref)
	if !ok {
		return fmt.Errorf(messages.SessionChannelNotFoundFmt, ref)
	}
	s.channel = ch
	return nil
}

// resolveFolder selects the download folder from ref or
// layout.download_folder. When required is false a missing folder is not an
// error.
func (s *session) resolveFolder(ref string, required bool) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		ref = strings.TrimSpace(s.cfg.Layout.DownloadFolder)
	}
	if ref == "" {
		if required {
			return errors.New(messages.SessionFolderRequired)
		}
		return nil
	}
	folder, err := config.ExpandPath(ref)
	if err != nil {
		return fmt.Errorf(messages.SessionResolveFolderFmt, ref, err)
	}
	s.workspace = layout.Workspace{Folder: folder}
	return nil
}

// lockFolder takes the cross-process lock for the download folder.
func (s *session) lockFolder() error {
	lock, err := installer.LockFolder(s.paths.LocksDir, s.workspace.Folder)
	if err != nil {
		return err
	}
	s.lock = lock
	return nil
}

// removeCleaned deletes archive folders the installer already cleaned.
func (s *session) removeCleaned() error {
	removed, err := s.workspace.RemoveCleaned()
	for _, dir := range removed {
		s.progressf(messages.ProgressRemovedCleanedFmt, dir)
	}
	return err
}

// loadCatalog fetches and extracts the component catalog of the selected
// channel. Skipped records are reported as warnings.
func (s *session) loadCatalog(ctx context.Context) ([]catalog.Component, error) {
	id := s.channel.ID()
	if id == "" {
		return nil, fmt.Errorf(messages.SessionChannelNoIDFmt, s.channel.DisplayName(), s.channel.DetailURL)
	}
	s.progressf(messages.ProgressFetchingCatalogFmt, s.channel.DisplayName())
	doc, err := s.client.Document(ctx, s.channel.DetailURL)
	if err != nil {
		return nil, err
	}
	extraction, err := catalog.Extract(doc, id)
	if err != nil {
		return nil, err
	}
	if !s.quiet {
		for _, skipped := range extraction.Skipped {
			s.warn(messages.WarningPrefix + fmt.Sprintf(messages.ProgressSkippedRecordFmt, skipped.Title, skipped.Reason))
		}
	}
	s.progressf(messages.ProgressFetchedCatalogFmt, len(catalog.Leaves(extraction.Components)), id)
	return extraction.Components, nil
}

// reconcile restores the selection recorded in the folder's Layout.json.
// It returns the descriptor, or nil when the folder has none.
func (s *session) reconcile(components []catalog.Component) (*layout.Descriptor, layout.Result, error) {
	if s.workspace.Folder == "" {
		return nil, layout.Result{}, nil
	}
	descriptor, err := layout.LoadDescriptor(s.workspace.Folder)
	if err != nil {
		return nil, layout.Result{}, err
	}
	result := layout.Reconcile(components, s.languages, s.channel.DownloaderURL, descriptor)
	for _, w := range result.Warnings {
		s.warn(w.Message)
	}
	if descriptor != nil && components != nil {
		s.progressf(messages.ProgressReconciledFmt, layout.DescriptorFile)
	}
	return descriptor, result, nil
}

// languageKeys validates keys against the language list and returns the
// canonical keys.
func (s *session) languageKeys(keys []string) ([]string, error) {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		lang, ok := catalog.FindLanguage(s.languages, strings.TrimSpace(key))
		if !ok {
			return nil, fmt.Errorf(messages.SessionUnknownLanguageFmt, key)
		}
		if seen[lang.Key] {
			continue
		}
		seen[lang.Key] = true
		out = append(out, lang.Key)
	}
	return out, nil
}

// run prints the command in dry-run mode or runs the installer.
func (s *session) run(ctx context.Context, args string, dryRun bool) error {
	if dryRun {
		_, _ = fmt.Fprintf(s.out(), messages.ProgressDryRunFmt, s.channel.DownloaderURL, args)
		return nil
	}
	progress := s.cmd.ErrOrStderr()
	if s.quiet {
		progress = io.Discard
	}
	inst := &installer.Installer{
		Downloader: s.client,
		Progress:   progress,
		Stdin:      os.Stdin,
		Stdout:     s.cmd.OutOrStdout(),
		Stderr:     s.cmd.ErrOrStderr(),
	}
	s.progressf(messages.ProgressRunningInstallerFmt, args)
	if err := runInstaller(ctx, inst, s.channel.DownloaderURL, args); err != nil {
		return err
	}
	s.progressf("%s\n", messages.ProgressInstallerFinished)
	return nil
}

// handleCancel turns a cancelled prompt into a quiet non-zero exit.
func (s *session) handleCancel(err error) error {
	if errors.Is(err, wizard.ErrCancelled) {
		_, _ = fmt.Fprintln(s.cmd.ErrOrStderr(), messages.PromptExitNoChanges)
		return &SilentExitError{Code: 1}
	}
	return err
}
