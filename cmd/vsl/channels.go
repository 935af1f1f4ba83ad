package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/vs-layout/internal/messages"
)

func newChannelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ChannelsUse,
		Short: messages.ChannelsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, nil, false)
			if err != nil {
				return err
			}
			out := s.out()
			_, _ = fmt.Fprintf(out, messages.ChannelsHeaderFmt, s.paths.ChannelsPath)
			for i, ch := range s.channels {
				id := ch.ID()
				if id == "" {
					id = messages.ChannelNoIDLabel
				}
				_, _ = fmt.Fprintf(out, messages.ChannelsRowFmt, i+1, id, ch.DisplayName())
				_, _ = fmt.Fprintf(out, messages.ChannelsDetailFmt, ch.DetailURL, ch.DownloaderURL)
			}
			return nil
		},
	}
}
