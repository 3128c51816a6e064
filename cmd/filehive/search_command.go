package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"filehive/internal/notelog"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <file-name>",
		Short: "Search audit notes for a file's prior placements",
		Long:  "Search walks every organization note under the output root and reports lines containing the given name. Matching is by substring, so partial names work but may over-match.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			matches, err := notelog.Search(cfg.Paths.OutputRoot, cfg.Organizer.NoteFilename, args[0])
			if err != nil {
				return fmt.Errorf("search notes: %w", err)
			}
			if len(matches) == 0 {
				fmt.Fprintf(out, "No previous log found for %q.\n", args[0])
				return nil
			}

			rows := make([][]string, 0, len(matches))
			for _, m := range matches {
				rows = append(rows, []string{m.Folder, m.Line})
			}
			fmt.Fprintln(out, renderTable([]string{"Folder", "Entry"}, rows))
			return nil
		},
	}
}
