package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cppla/levelup/game"
)

func newCurveCmd() *cobra.Command {
	var levels int
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Print the XP threshold and title for each level",
		RunE: func(cmd *cobra.Command, args []string) error {
			if levels <= 0 {
				return fmt.Errorf("--levels must be positive, got %d", levels)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LEVEL\tTITLE\tREQUIRED XP\tCUMULATIVE XP")
			for _, s := range game.Curve(levels) {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", s.Level, s.Title, s.RequiredXP, s.CumulativeXP)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&levels, "levels", "n", 15, "number of levels to print")
	return cmd
}
