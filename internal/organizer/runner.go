package organizer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"filehive/internal/classify"
	"filehive/internal/config"
	"filehive/internal/fileutil"
	"filehive/internal/history"
	"filehive/internal/logging"
	"filehive/internal/notelog"
	"filehive/internal/notifications"
	"filehive/internal/scan"
	"filehive/internal/services"
)

// Runner orchestrates one organization run over a set of input paths.
type Runner struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *history.Store
	notifier notifications.Service
	notes    *notelog.Logger
}

// NewRunner constructs the run orchestrator using default dependencies.
func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	return NewRunnerWithDependencies(cfg, logger, nil, notifications.NewService(cfg))
}

// NewRunnerWithDependencies allows injecting collaborators (used in tests).
// The history store may be nil; runs then go unrecorded but still succeed.
func NewRunnerWithDependencies(cfg *config.Config, logger *slog.Logger, store *history.Store, notifier notifications.Service) *Runner {
	return &Runner{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "organizer"),
		store:    store,
		notifier: notifier,
		notes:    notelog.NewLogger(cfg.Organizer.NoteFilename),
	}
}

// Run enumerates the input paths and processes every file sequentially,
// streaming events to the returned channel. The channel is closed after the
// terminal Done event. Cancellation is honored between files only; a copy in
// flight always completes or fails on its own.
func (r *Runner) Run(ctx context.Context, paths []string) <-chan Event {
	events := make(chan Event)
	go func() {
		defer close(events)
		r.run(ctx, paths, events)
	}()
	return events
}

func (r *Runner) run(ctx context.Context, paths []string, events chan<- Event) {
	runID := uuid.NewString()
	logger := r.logger.With(logging.String("run_id", runID))
	startedAt := time.Now()

	enumerator := scan.NewEnumerator(r.cfg.Paths.OutputRoot, logger)
	files := enumerator.Enumerate(paths)
	total := len(files)
	logger.Info("starting organization run",
		logging.Int("inputs", len(paths)),
		logging.Int("files", total),
	)

	if r.store != nil {
		if err := r.store.BeginRun(ctx, runID, startedAt); err != nil {
			logger.Warn("failed to record run start", logging.Error(err))
		}
	}

	touched := make(map[string]struct{})
	succeeded := 0
	failed := 0
	processed := 0

	for _, path := range files {
		if ctx.Err() != nil {
			logger.Info("run cancelled", logging.Int("remaining", total-processed))
			break
		}

		outcome, err := r.processFile(ctx, runID, path)
		processed++
		if err != nil {
			failed++
			logger.Warn("file failed", logging.String("path", path), logging.Error(err))
			events <- Log{
				Message: fmt.Sprintf("error organizing %s: %v", path, err),
				Err:     err,
			}
		} else {
			succeeded++
			touched[outcome.folder] = struct{}{}
			events <- Log{Message: fmt.Sprintf("%s -> %s as %s [%s]",
				filepath.Base(path), outcome.folder, outcome.destName, outcome.label)}
		}
		events <- Progress{Processed: processed, Total: total}
	}

	folders := make([]string, 0, len(touched))
	for folder := range touched {
		folders = append(folders, folder)
	}
	sort.Strings(folders)

	if r.store != nil {
		if err := r.store.FinishRun(ctx, runID, time.Now(), processed, succeeded, failed); err != nil {
			logger.Warn("failed to record run end", logging.Error(err))
		}
	}

	logger.Info("organization run finished",
		logging.Int("processed", processed),
		logging.Int("succeeded", succeeded),
		logging.Int("failed", failed),
		logging.Int("folders", len(folders)),
	)
	r.notifyCompletion(ctx, logger, succeeded, failed, len(folders))

	events <- Done{Folders: folders}
}

type fileOutcome struct {
	folder   string
	destName string
	label    string
}

// processFile runs the full per-file transaction: classify, resolve, copy,
// note. Failures are returned, not raised; the caller converts them into
// Log events.
func (r *Runner) processFile(ctx context.Context, runID, path string) (fileOutcome, error) {
	info, err := os.Stat(path)
	if err != nil {
		return fileOutcome{}, services.Wrap(services.ErrTransient, "organizing", "stat source", "source vanished before copy", err)
	}

	result := classify.Classify(path)
	base := filepath.Base(path)

	folder := DestinationFolder(r.cfg.Paths.OutputRoot, result.Extension, info.ModTime())
	destPath, err := ResolveDestination(folder, base, r.cfg.Organizer.MarkerToken)
	if err != nil {
		return fileOutcome{}, services.Wrap(services.ErrConfiguration, "organizing", "resolve destination", "cannot prepare destination folder", err)
	}
	destName := filepath.Base(destPath)

	if err := fileutil.CopyFilePreserving(path, destPath); err != nil {
		return fileOutcome{}, services.Wrap(services.ErrTransient, "organizing", "copy file", "failed to copy bytes", err)
	}

	if r.store != nil {
		record := history.Copy{
			RunID:        runID,
			SourcePath:   path,
			DestPath:     destPath,
			Folder:       folder,
			OriginalName: base,
			DestName:     destName,
			TypeLabel:    result.Label(),
			CopiedAt:     time.Now(),
		}
		if err := r.store.RecordCopy(ctx, record); err != nil {
			r.logger.Warn("failed to record copy in history", logging.String("path", path), logging.Error(err))
		}
	}

	if err := r.notes.Append(folder, base, destName, result.Label()); err != nil {
		// The copy exists but its audit line does not; surfaced as a
		// per-file error, copy left in place.
		return fileOutcome{}, services.Wrap(services.ErrTransient, "organizing", "append note", "copy succeeded but audit note failed", err)
	}

	return fileOutcome{folder: folder, destName: destName, label: result.Label()}, nil
}

func (r *Runner) notifyCompletion(ctx context.Context, logger *slog.Logger, succeeded, failed, folders int) {
	if r.notifier == nil {
		return
	}
	payload := notifications.Payload{
		"succeeded": fmt.Sprint(succeeded),
		"folders":   fmt.Sprint(folders),
	}
	if err := r.notifier.Publish(ctx, notifications.EventOrganizationCompleted, payload); err != nil {
		logger.Warn("completion notification failed", logging.Error(err))
	}
	if failed > 0 {
		payload := notifications.Payload{
			"failed": fmt.Sprint(failed),
			"detail": "see run log for per-file errors",
		}
		if err := r.notifier.Publish(ctx, notifications.EventRunFailed, payload); err != nil {
			logger.Warn("failure notification failed", logging.Error(err))
		}
	}
}
