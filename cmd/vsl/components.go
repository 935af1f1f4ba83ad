package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/vs-layout/internal/catalog"
	"github.com/conn-castle/vs-layout/internal/messages"
)

func newComponentsCmd(opts *globalOptions) *cobra.Command {
	var channel, folder string
	cmd := &cobra.Command{
		Use:   messages.ComponentsUse,
		Short: messages.ComponentsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts, true)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.resolveChannel(channel); err != nil {
				return s.handleCancel(err)
			}
			if err := s.resolveFolder(folder, false); err != nil {
				return err
			}
			components, err := s.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			_, result, err := s.reconcile(components)
			if err != nil {
				return err
			}
			printComponents(s.out(), components)
			if len(result.Languages) > 0 {
				_, _ = fmt.Fprintf(s.out(), messages.ComponentsLangsFmt, strings.Join(catalog.LanguageKeys(result.Languages), ", "))
			}
			leaves := catalog.Leaves(components)
			_, _ = fmt.Fprintf(s.out(), messages.ComponentsSummaryFmt, len(leaves), len(catalog.SelectedIDs(components)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&channel, "channel", "c", "", messages.FlagChannel)
	cmd.Flags().StringVarP(&folder, "folder", "f", "", messages.FlagFolder)
	return cmd
}

// printComponents writes the tree with group children indented under their
// header. Selected leaves are marked.
func printComponents(out io.Writer, components []catalog.Component) {
	for _, c := range components {
		if !c.IsGroup() {
			printLeaf(out, "", c)
			continue
		}
		_, _ = fmt.Fprintf(out, messages.ComponentsGroupFmt, c.Title)
		for _, child := range c.Children {
			printLeaf(out, "  ", child)
		}
	}
}

func printLeaf(out io.Writer, indent string, c catalog.Component) {
	mark := " "
	if c.Selected {
		mark = messages.ComponentsSelected
	}
	_, _ = fmt.Fprintf(out, messages.ComponentsLeafFmt, indent, mark, c.Title, c.ID)
}
