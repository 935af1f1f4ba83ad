package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/vs-layout/internal/catalog"
	"github.com/conn-castle/vs-layout/internal/command"
	"github.com/conn-castle/vs-layout/internal/layout"
	"github.com/conn-castle/vs-layout/internal/messages"
	"github.com/conn-castle/vs-layout/internal/wizard"
)

// layoutFlags are the flags shared by download, update and clean.
type layoutFlags struct {
	channel string
	folder  string
	yes     bool
	dryRun  bool
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.channel, "channel", "c", "", messages.FlagChannel)
	cmd.Flags().StringVarP(&f.folder, "folder", "f", "", messages.FlagFolder)
	cmd.Flags().BoolVarP(&f.yes, "yes", "y", false, messages.FlagYes)
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, messages.FlagDryRun)
}

type downloadFlags struct {
	layoutFlags
	langs []string
	adds  []string
	reset bool
}

func newDownloadCmd(opts *globalOptions) *cobra.Command {
	flags := &downloadFlags{}
	cmd := &cobra.Command{
		Use:   messages.DownloadUse,
		Short: messages.DownloadShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDownload(cmd, opts, flags)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringArrayVar(&flags.langs, "lang", nil, messages.FlagLang)
	cmd.Flags().StringArrayVar(&flags.adds, "add", nil, messages.FlagAdd)
	cmd.Flags().BoolVar(&flags.reset, "reset", false, messages.FlagReset)
	return cmd
}

func runDownload(cmd *cobra.Command, opts *globalOptions, flags *downloadFlags) error {
	s, err := openSession(cmd, opts, !flags.yes)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.resolveChannel(flags.channel); err != nil {
		return s.handleCancel(err)
	}
	if err := s.resolveFolder(flags.folder, true); err != nil {
		return err
	}
	if err := s.lockFolder(); err != nil {
		return err
	}
	if err := s.removeCleaned(); err != nil {
		return err
	}

	ctx := cmd.Context()
	components, err := s.loadCatalog(ctx)
	if err != nil {
		return err
	}
	if len(catalog.Leaves(components)) == 0 {
		return fmt.Errorf(messages.SessionEmptyCatalogFmt, s.channel.ID())
	}
	descriptor, result, err := s.reconcile(components)
	if err != nil {
		return err
	}

	languages, err := s.downloadLanguages(flags.langs, result)
	if err != nil {
		return err
	}
	if len(flags.adds) > 0 {
		catalog.ClearSelection(components)
		if missing := catalog.Select(components, flags.adds); len(missing) > 0 {
			return fmt.Errorf(messages.SessionUnknownComponentFmt, missing[0], s.channel.ID())
		}
	}
	if s.interactive {
		languages, err = wizard.ChooseSelection(s.ui, components, s.languages, languages)
		if err != nil {
			return s.handleCancel(err)
		}
	}
	ids := catalog.SelectedIDs(components)
	if len(ids) == 0 {
		return errors.New(messages.SessionNoComponentsSelected)
	}
	if s.interactive {
		if err := wizard.ShowSelection(s.ui, languages, ids); err != nil {
			return s.handleCancel(err)
		}
	}

	if descriptor != nil {
		if diff := layout.SelectionDiff(descriptor, languages, ids); diff == "" {
			s.progressf("%s\n", messages.ProgressNoSelectionChanges)
		} else {
			s.progressf("%s\n%s", messages.ProgressSelectionChanges, diff)
		}
	}

	if !flags.dryRun {
		if err := s.maybeReset(flags.reset); err != nil {
			return s.handleCancel(err)
		}
	}

	args, err := command.Build(command.Request{
		Mode:         command.ModeDownload,
		Folder:       s.workspace.Folder,
		Languages:    languages,
		ComponentIDs: ids,
	})
	if err != nil {
		return err
	}
	return s.run(ctx, args, flags.dryRun)
}

// downloadLanguages picks languages from --lang, then the existing layout,
// then layout.languages.
func (s *session) downloadLanguages(flagLangs []string, result layout.Result) ([]string, error) {
	if len(flagLangs) > 0 {
		return s.languageKeys(flagLangs)
	}
	if len(result.Languages) > 0 {
		return catalog.LanguageKeys(result.Languages), nil
	}
	return s.languageKeys(s.cfg.Layout.Languages)
}

// maybeReset empties a non-empty download folder when --reset is set or
// the user agrees to it.
func (s *session) maybeReset(reset bool) error {
	empty, err := s.workspace.IsEmpty()
	if err != nil || empty {
		return err
	}
	if !reset && s.interactive {
		reset, err = wizard.ConfirmReset(s.ui, s.workspace.Folder)
		if err != nil {
			return err
		}
	}
	if !reset {
		return nil
	}
	if err := s.workspace.Reset(); err != nil {
		return err
	}
	s.progressf(messages.ProgressResetFolderFmt, s.workspace.Folder)
	return nil
}
