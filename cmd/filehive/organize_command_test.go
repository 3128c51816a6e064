package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOrganizeCommandCopiesFiles(t *testing.T) {
	env := setupCLITestEnv(t)

	srcDir := filepath.Join(env.baseDir, "inbox")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		t.Fatalf("mkdir inbox: %v", err)
	}
	src := filepath.Join(srcDir, "notes.txt")
	if err := os.WriteFile(src, []byte("meeting minutes"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	modTime := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local)
	if err := os.Chtimes(src, modTime, modTime); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	out, _, err := runCLI(t, []string{"organize", srcDir}, env.configPath)
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	requireContains(t, out, "Files were saved in the following folders:")

	folder := filepath.Join(env.cfg.Paths.OutputRoot, "TXT", "2024-03")
	dest := filepath.Join(folder, "notesxh.txt")
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read destination: %v", err)
	}
	if string(data) != "meeting minutes" {
		t.Fatalf("destination content = %q", data)
	}
	if _, err := os.Stat(filepath.Join(folder, env.cfg.Organizer.NoteFilename)); err != nil {
		t.Fatalf("expected audit note: %v", err)
	}
}

func TestOrganizeCommandRefusesMarkedFiles(t *testing.T) {
	env := setupCLITestEnv(t)

	src := filepath.Join(env.baseDir, "reportxh.txt")
	if err := os.WriteFile(src, []byte("quarterly"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	out, _, err := runCLI(t, []string{"organize", src}, env.configPath)
	if err == nil {
		t.Fatal("expected organize to refuse marked files")
	}
	requireContains(t, out, "already carry")

	out, _, err = runCLI(t, []string{"organize", "--force", src}, env.configPath)
	if err != nil {
		t.Fatalf("organize --force: %v", err)
	}
	requireContains(t, out, "Files were saved in the following folders:")
}

func TestOrganizeCommandNoFiles(t *testing.T) {
	env := setupCLITestEnv(t)

	emptyDir := filepath.Join(env.baseDir, "empty")
	if err := os.MkdirAll(emptyDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	out, _, err := runCLI(t, []string{"organize", emptyDir}, env.configPath)
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	requireContains(t, out, "No files were organized.")
}
