package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/syssam/autobuilder/compiler/gen"
)

func newFeaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "List the codegen features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSTAGE\tDEFAULT\tDESCRIPTION")
			for _, f := range gen.AllFeatures() {
				fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", f.Name, f.Stage, f.Default, f.Description)
			}
			return w.Flush()
		},
	}
}
