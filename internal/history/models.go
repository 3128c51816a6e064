package history

import "time"

// Run summarizes one orchestrator invocation.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Processed  int
	Succeeded  int
	Failed     int
}

// Finished reports whether the run recorded a terminal event.
func (r Run) Finished() bool { return !r.FinishedAt.IsZero() }

// Copy records one successful file copy within a run.
type Copy struct {
	ID           int64
	RunID        string
	SourcePath   string
	DestPath     string
	Folder       string
	OriginalName string
	DestName     string
	TypeLabel    string
	CopiedAt     time.Time
}
