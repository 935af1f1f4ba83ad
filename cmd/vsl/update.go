package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/vs-layout/internal/command"
	"github.com/conn-castle/vs-layout/internal/layout"
	"github.com/conn-castle/vs-layout/internal/messages"
)

func newUpdateCmd(opts *globalOptions) *cobra.Command {
	flags := &layoutFlags{}
	cmd := &cobra.Command{
		Use:   messages.UpdateUse,
		Short: messages.UpdateShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := prepareExisting(cmd, opts, flags)
			if err != nil {
				return err
			}
			defer s.close()

			if !s.workspace.CanUpdate() {
				return fmt.Errorf("%w: "+messages.SessionUpdateNotReadyFmt, layout.ErrNotReady, s.workspace.Folder)
			}
			argString, err := command.Build(command.Request{Mode: command.ModeUpdate, Folder: s.workspace.Folder})
			if err != nil {
				return err
			}
			return s.run(cmd.Context(), argString, flags.dryRun)
		},
	}
	flags.register(cmd)
	return cmd
}

// prepareExisting opens a session for an operation on an existing layout:
// channel, folder, lock, cleaned-archive removal and the version check.
func prepareExisting(cmd *cobra.Command, opts *globalOptions, flags *layoutFlags) (_ *session, err error) {
	s, err := openSession(cmd, opts, !flags.yes)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			s.close()
		}
	}()
	if err := s.resolveChannel(flags.channel); err != nil {
		return nil, s.handleCancel(err)
	}
	if err := s.resolveFolder(flags.folder, true); err != nil {
		return nil, err
	}
	if err := s.lockFolder(); err != nil {
		return nil, err
	}
	if err := s.removeCleaned(); err != nil {
		return nil, err
	}
	if _, _, err := s.reconcile(nil); err != nil {
		return nil, err
	}
	return s, nil
}
