package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"filehive/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var (
		name  string
		runID string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded runs and copies from the history database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(cfg)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()
			out := cmd.OutOrStdout()

			switch {
			case name != "":
				copies, err := store.CopiesByName(cmd.Context(), name)
				if err != nil {
					return err
				}
				if len(copies) == 0 {
					fmt.Fprintf(out, "No recorded copies for %q.\n", name)
					return nil
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Copied", "Original", "Saved As", "Folder", "Type"},
					copyRows(copies)))
			case runID != "":
				copies, err := store.CopiesForRun(cmd.Context(), runID)
				if err != nil {
					return err
				}
				if len(copies) == 0 {
					fmt.Fprintf(out, "No copies recorded for run %s.\n", runID)
					return nil
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Copied", "Original", "Saved As", "Folder", "Type"},
					copyRows(copies)))
			default:
				runs, err := store.RecentRuns(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if len(runs) == 0 {
					fmt.Fprintln(out, "No runs recorded yet.")
					return nil
				}
				rows := make([][]string, 0, len(runs))
				for _, r := range runs {
					finished := "running"
					if r.Finished() {
						finished = r.FinishedAt.Local().Format(time.DateTime)
					}
					rows = append(rows, []string{
						r.ID,
						r.StartedAt.Local().Format(time.DateTime),
						finished,
						strconv.Itoa(r.Processed),
						strconv.Itoa(r.Succeeded),
						strconv.Itoa(r.Failed),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Run", "Started", "Finished", "Processed", "Succeeded", "Failed"}, rows))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Exact original or destination base name to look up")
	cmd.Flags().StringVar(&runID, "run", "", "Show copies recorded for a specific run id")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	return cmd
}

func copyRows(copies []history.Copy) [][]string {
	rows := make([][]string, 0, len(copies))
	for _, c := range copies {
		rows = append(rows, []string{
			c.CopiedAt.Local().Format(time.DateTime),
			c.OriginalName,
			c.DestName,
			c.Folder,
			c.TypeLabel,
		})
	}
	return rows
}
