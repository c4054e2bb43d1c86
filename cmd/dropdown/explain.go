package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/dropdown/internal/errors"
)

func explainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain [code]",
		Short: "Describe an error code",
		Long: `Describe an error code, or list all codes when none is given.

Examples:
  dropdown explain
  dropdown explain E102`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				for _, code := range errors.GetAllCodes() {
					t, _ := errors.GetTemplate(code)
					fmt.Fprintf(w, "%s\t%s\t%s\n", code, t.Category, t.Message)
				}
				return w.Flush()
			}

			code := strings.ToUpper(args[0])
			t, ok := errors.GetTemplate(code)
			if !ok {
				return errors.New("E303").
					WithDetail("Unknown error code " + args[0]).
					WithSuggestion("Run dropdown explain to list the codes")
			}
			_, err := fmt.Fprintf(out, "%s %s (%s)\n\n  %s\n", code, t.Message, t.Category, t.Detail)
			return err
		},
	}
}
