package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/dropdown/internal/errors"
	"github.com/vango-dev/dropdown/internal/stories"
)

func storiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stories",
		Short: "Inspect the embedded story catalogue",
	}
	cmd.AddCommand(storiesListCmd(), storiesRenderCmd())
	return cmd
}

func storiesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := stories.Embedded()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, s := range cat.Stories {
				fmt.Fprintf(w, "%s\t%s\n", s.Name, s.Description)
			}
			return w.Flush()
		},
	}
}

func storiesRenderCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "render <name>",
		Short: "Print the HTML of a story",
		Long: `Render a story with its list closed and print the HTML.

Examples:
  dropdown stories render Default
  dropdown stories render Multiple --pretty`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("E303").
					WithDetail("Expected exactly one story name").
					WithExample("dropdown stories render Default")
			}
			cat, err := stories.Embedded()
			if err != nil {
				return err
			}
			s, err := cat.Lookup(args[0])
			if err != nil {
				return err
			}
			html, err := cat.Render(s, pretty)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), html)
			return err
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the HTML")

	return cmd
}
