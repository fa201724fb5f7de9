package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/splitting-world/internal/persistence"
)

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs <chronicle>",
		Short: "List runs recorded in a chronicle, or replay one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := persistence.Open(args[0])
			if err != nil {
				return err
			}
			defer c.Close()

			out := cmd.OutOrStdout()

			if id, _ := cmd.Flags().GetString("show"); id != "" {
				entries, err := c.Entries(id)
				if err != nil {
					return fmt.Errorf("loading run %s: %w", id, err)
				}
				if len(entries) == 0 {
					return fmt.Errorf("run %s has no entries", id)
				}
				for _, e := range entries {
					fmt.Fprintln(out, strings.Repeat("  ", e.Indent)+e.Text)
				}
				return nil
			}

			limit, _ := cmd.Flags().GetInt("limit")
			runs, err := c.Runs(limit)
			if err != nil {
				return fmt.Errorf("listing runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded.")
				return nil
			}
			for _, r := range runs {
				reason := "unfinished"
				if r.Reason.Valid {
					reason = r.Reason.String
				}
				fmt.Fprintf(out, "%s  seed=%d  era=%d/%d  turns=%s  lines=%s  %s  (%s)\n",
					r.ID, r.Seed, r.FinalEra, r.MaxEra,
					humanize.Comma(int64(r.Turns)), humanize.Comma(int64(r.Entries)),
					reason, humanize.Time(r.Started()))
			}
			return nil
		},
	}
	cmd.Flags().Int("limit", 20, "Maximum number of runs to list")
	cmd.Flags().String("show", "", "Print the history of the run with this id")
	return cmd
}
