package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/vs-layout/internal/messages"
	"github.com/conn-castle/vs-layout/internal/terminal"
)

const (
	flagQuiet      = "quiet"
	flagQuietShort = "q"
	flagNoColor    = "no-color"
)

// globalOptions holds persistent flags shared by every subcommand.
type globalOptions struct {
	quiet   bool
	noColor bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			terminal.ConfigureColor(opts.noColor)
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.quiet, flagQuiet, flagQuietShort, false, messages.RootFlagQuiet)
	cmd.PersistentFlags().BoolVar(&opts.noColor, flagNoColor, false, messages.RootFlagNoColor)

	cmd.AddCommand(
		newChannelsCmd(),
		newLanguagesCmd(),
		newComponentsCmd(opts),
		newDownloadCmd(opts),
		newUpdateCmd(opts),
		newCleanCmd(opts),
		newConfigCmd(),
	)
	return cmd
}
