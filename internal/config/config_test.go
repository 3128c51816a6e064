package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"filehive/internal/config"
)

func TestDefaultNormalizesAndValidates(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err == nil {
		// Default paths are still tilde-prefixed before Load normalizes them,
		// so direct validation must reject the relative output root.
		t.Fatal("expected validation failure for unexpanded default paths")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, path, exists, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatalf("expected missing config at %s", path)
	}
	if cfg.Organizer.MarkerToken != "xh" {
		t.Fatalf("marker token = %q, want xh", cfg.Organizer.MarkerToken)
	}
	if cfg.Organizer.NoteFilename != "organization_note.txt" {
		t.Fatalf("note filename = %q", cfg.Organizer.NoteFilename)
	}
	if !filepath.IsAbs(cfg.Paths.OutputRoot) {
		t.Fatalf("output root not absolute: %q", cfg.Paths.OutputRoot)
	}
}

func TestLoadParsesAndExpandsPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := strings.Join([]string{
		"[paths]",
		`output_root = "` + filepath.Join(dir, "out") + `"`,
		`log_dir = "` + filepath.Join(dir, "logs") + `"`,
		"[organizer]",
		`marker_token = "zz"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved=%q exists=%v", resolved, exists)
	}
	if cfg.Organizer.MarkerToken != "zz" {
		t.Fatalf("marker token = %q, want zz", cfg.Organizer.MarkerToken)
	}
	if cfg.Paths.OutputRoot != filepath.Join(dir, "out") {
		t.Fatalf("output root = %q", cfg.Paths.OutputRoot)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"empty marker", func(c *config.Config) { c.Organizer.MarkerToken = "" }},
		{"marker with separator", func(c *config.Config) { c.Organizer.MarkerToken = "a/b" }},
		{"note filename with separator", func(c *config.Config) { c.Organizer.NoteFilename = "notes/log.txt" }},
		{"bad log format", func(c *config.Config) { c.Logging.Format = "xml" }},
		{"bad log level", func(c *config.Config) { c.Logging.Level = "loud" }},
		{"relative output root", func(c *config.Config) { c.Paths.OutputRoot = "relative/out" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateSampleWritesFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "marker_token") {
		t.Fatal("sample config missing organizer section")
	}
}
