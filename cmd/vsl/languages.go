package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/vs-layout/internal/config"
	"github.com/conn-castle/vs-layout/internal/messages"
)

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.LanguagesUse,
		Short: messages.LanguagesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			languages, err := config.Languages()
			if err != nil {
				return err
			}
			for _, lang := range languages {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.LanguagesRowFmt, lang.Key, lang.Title)
			}
			return nil
		},
	}
}
