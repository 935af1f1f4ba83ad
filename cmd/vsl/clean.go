package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/vs-layout/internal/command"
	"github.com/conn-castle/vs-layout/internal/layout"
	"github.com/conn-castle/vs-layout/internal/messages"
)

func newCleanCmd(opts *globalOptions) *cobra.Command {
	flags := &layoutFlags{}
	cmd := &cobra.Command{
		Use:   messages.CleanUse,
		Short: messages.CleanShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := prepareExisting(cmd, opts, flags)
			if err != nil {
				return err
			}
			defer s.close()

			ready, err := s.workspace.CanClean()
			if err != nil {
				return err
			}
			if !ready {
				return fmt.Errorf("%w: "+messages.SessionCleanNotReadyFmt, layout.ErrNotReady, s.workspace.Folder)
			}
			catalogs, err := s.workspace.ArchivedCatalogs()
			if err != nil {
				return err
			}
			argString, err := command.Build(command.Request{
				Mode:          command.ModeClean,
				Folder:        s.workspace.Folder,
				CleanCatalogs: catalogs,
			})
			if err != nil {
				return err
			}
			if err := s.run(cmd.Context(), argString, flags.dryRun); err != nil {
				return err
			}
			if flags.dryRun {
				return nil
			}
			return s.removeCleaned()
		},
	}
	flags.register(cmd)
	return cmd
}
