package history_test

import (
	"context"
	"testing"
	"time"

	"filehive/internal/history"
	"filehive/internal/testsupport"
)

func TestRunLifecycle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	started := time.Now().Add(-time.Minute)
	if err := store.BeginRun(ctx, "run-1", started); err != nil {
		t.Fatalf("BeginRun: %v", err)
	}

	copyTime := time.Now()
	err = store.RecordCopy(ctx, history.Copy{
		RunID:        "run-1",
		SourcePath:   "/input/notes.txt",
		DestPath:     "/out/TXT/2024-03/notesxh.txt",
		Folder:       "/out/TXT/2024-03",
		OriginalName: "notes.txt",
		DestName:     "notesxh.txt",
		TypeLabel:    "unknown/unknown",
		CopiedAt:     copyTime,
	})
	if err != nil {
		t.Fatalf("RecordCopy: %v", err)
	}

	if err := store.FinishRun(ctx, "run-1", time.Now(), 1, 1, 0); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}

	runs, err := store.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	run := runs[0]
	if run.ID != "run-1" || run.Processed != 1 || run.Succeeded != 1 || run.Failed != 0 {
		t.Fatalf("unexpected run: %+v", run)
	}
	if !run.Finished() {
		t.Fatal("run should be finished")
	}

	copies, err := store.CopiesForRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("CopiesForRun: %v", err)
	}
	if len(copies) != 1 || copies[0].DestName != "notesxh.txt" {
		t.Fatalf("unexpected copies: %+v", copies)
	}
}

func TestCopiesByNameExactMatch(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.BeginRun(ctx, "run-1", time.Now()); err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	for _, c := range []history.Copy{
		{RunID: "run-1", SourcePath: "/a/report.pdf", DestPath: "/o/PDF/2024-01/reportxh.pdf",
			Folder: "/o/PDF/2024-01", OriginalName: "report.pdf", DestName: "reportxh.pdf",
			TypeLabel: "application/pdf", CopiedAt: time.Now()},
		{RunID: "run-1", SourcePath: "/a/report-final.pdf", DestPath: "/o/PDF/2024-01/report-finalxh.pdf",
			Folder: "/o/PDF/2024-01", OriginalName: "report-final.pdf", DestName: "report-finalxh.pdf",
			TypeLabel: "application/pdf", CopiedAt: time.Now()},
	} {
		if err := store.RecordCopy(ctx, c); err != nil {
			t.Fatalf("RecordCopy: %v", err)
		}
	}

	// Exact matching: "report.pdf" must not pick up "report-final.pdf".
	copies, err := store.CopiesByName(ctx, "report.pdf")
	if err != nil {
		t.Fatalf("CopiesByName: %v", err)
	}
	if len(copies) != 1 || copies[0].OriginalName != "report.pdf" {
		t.Fatalf("unexpected matches: %+v", copies)
	}
}

func TestFinishRunUnknownID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if err := store.FinishRun(context.Background(), "missing", time.Now(), 0, 0, 0); err == nil {
		t.Fatal("expected error for unknown run id")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	reopened, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
}
