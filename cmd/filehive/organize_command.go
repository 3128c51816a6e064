package main

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"filehive/internal/history"
	"filehive/internal/logging"
	"filehive/internal/notifications"
	"filehive/internal/organizer"
	"filehive/internal/preflight"
	"filehive/internal/scan"
)

const lockFilename = ".filehive.lock"

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "organize <path>...",
		Short: "Classify and copy files into the output tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			notifier := notifications.NewService(cfg)

			marked := scan.FindMarked(args, cfg.Organizer.MarkerToken)
			if len(marked) > 0 {
				fmt.Fprintf(out, "%d file(s) already carry the %q marker:\n", len(marked), cfg.Organizer.MarkerToken)
				for _, path := range marked {
					fmt.Fprintf(out, "  %s\n", path)
				}
				if err := notifier.Publish(cmd.Context(), notifications.EventReprocessDetected, notifications.Payload{
					"count": fmt.Sprint(len(marked)),
				}); err != nil {
					logger.Warn("reprocess notification failed", logging.Error(err))
				}
				if !force {
					return fmt.Errorf("refusing to reorganize already-organized files; use `filehive search <name>` to find their prior placement, or rerun with --force")
				}
				fmt.Fprintln(out, "Reorganizing them anyway (--force).")
			}

			if failures := preflight.Failures(preflight.Run(cfg)); len(failures) > 0 {
				for _, f := range failures {
					fmt.Fprintf(out, "preflight %s: %s\n", f.Name, f.Detail)
				}
				return fmt.Errorf("preflight checks failed")
			}

			lock := flock.New(filepath.Join(cfg.Paths.OutputRoot, lockFilename))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another filehive run is already organizing into %s", cfg.Paths.OutputRoot)
			}
			defer func() { _ = lock.Unlock() }()

			store, err := history.Open(cfg)
			if err != nil {
				logger.Warn("run history unavailable", logging.Error(err))
				store = nil
			} else {
				defer store.Close()
			}

			runner := organizer.NewRunnerWithDependencies(cfg, logger, store, notifier)

			interactive := stdoutIsTerminal()
			var folders []string
			for event := range runner.Run(cmd.Context(), args) {
				switch ev := event.(type) {
				case organizer.Log:
					if interactive {
						// Terminate any in-place progress line first.
						fmt.Fprint(out, "\r\033[K")
					}
					fmt.Fprintln(out, ev.Message)
				case organizer.Progress:
					if interactive {
						fmt.Fprintf(out, "\r%d/%d", ev.Processed, ev.Total)
						if ev.Processed == ev.Total {
							fmt.Fprintln(out)
						}
					}
				case organizer.Done:
					folders = ev.Folders
				}
			}

			if len(folders) == 0 {
				fmt.Fprintln(out, "No files were organized.")
				return nil
			}
			fmt.Fprintln(out, "Files were saved in the following folders:")
			for _, folder := range folders {
				fmt.Fprintf(out, "  %s\n", folder)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Reorganize files even when they already carry the marker token")
	return cmd
}
