package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/conn-castle/vs-layout/internal/config"
	"github.com/conn-castle/vs-layout/internal/messages"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.ConfigUse,
		Short: messages.ConfigShort,
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   messages.ConfigShowUse,
			Short: messages.ConfigShowShort,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				paths, err := resolvePaths()
				if err != nil {
					return err
				}
				data, err := os.ReadFile(paths.ConfigPath)
				if err != nil {
					if errors.Is(err, fs.ErrNotExist) {
						_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.ConfigNoFileFmt, paths.ConfigPath)
						return nil
					}
					return fmt.Errorf(messages.ConfigReadFileFmt, paths.ConfigPath, err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.ConfigPathFmt, paths.ConfigPath)
				_, _ = cmd.OutOrStdout().Write(data)
				return nil
			},
		},
		&cobra.Command{
			Use:   messages.ConfigSetUse,
			Short: messages.ConfigSetShort,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				paths, err := resolvePaths()
				if err != nil {
					return err
				}
				if err := config.SetFile(paths.ConfigPath, args[0], args[1]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.ConfigUpdatedFmt, args[0], paths.ConfigPath)
				return nil
			},
		},
	)
	return cmd
}
