package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"filehive/internal/scan"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>...",
		Short: "List files that already carry the marker token",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			marked := scan.FindMarked(args, cfg.Organizer.MarkerToken)
			if len(marked) == 0 {
				fmt.Fprintln(out, "No previously organized files found.")
				return nil
			}
			fmt.Fprintf(out, "%d file(s) already carry the %q marker:\n", len(marked), cfg.Organizer.MarkerToken)
			for _, path := range marked {
				fmt.Fprintf(out, "  %s\n", path)
			}
			return nil
		},
	}
}
