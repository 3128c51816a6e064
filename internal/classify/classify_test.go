package classify_test

import (
	"os"
	"path/filepath"
	"testing"

	"filehive/internal/classify"
)

// pngHeader is a minimal PNG signature; enough for magic matching.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func writeFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestSniffDetectsPNG(t *testing.T) {
	path := writeFixture(t, "img.png", pngHeader)
	kind := classify.Sniff(path)
	if kind.IsUnknown() {
		t.Fatal("expected PNG signature to match")
	}
	if kind.Label() != "image/png" {
		t.Fatalf("label = %q, want image/png", kind.Label())
	}
}

func TestSniffDegradesToUnknown(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string {
			return filepath.Join(t.TempDir(), "absent.bin")
		}},
		{"zero-length file", func(t *testing.T) string {
			return writeFixture(t, "empty", nil)
		}},
		{"unrecognized bytes", func(t *testing.T) string {
			return writeFixture(t, "plain.txt", []byte("just some text"))
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kind := classify.Sniff(tc.path(t))
			if !kind.IsUnknown() {
				t.Fatalf("expected Unknown, got %q", kind.Label())
			}
			if kind.Label() != "unknown/unknown" {
				t.Fatalf("unknown label = %q", kind.Label())
			}
		})
	}
}

func TestExtensionToken(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/tmp/report.PDF", "pdf"},
		{"/tmp/archive.tar.GZ", "gz"},
		{"/tmp/README", "NOEXT"},
		{"notes.txt", "txt"},
		{"/tmp/dir.with.dots/README", "NOEXT"},
		{"/home/user/.bashrc", "NOEXT"},
	}
	for _, tc := range tests {
		if got := classify.ExtensionToken(tc.path); got != tc.want {
			t.Errorf("ExtensionToken(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestClassifyCombinesKindAndExtension(t *testing.T) {
	path := writeFixture(t, "photo.png", pngHeader)
	res := classify.Classify(path)
	if res.Extension != "png" {
		t.Fatalf("extension = %q", res.Extension)
	}
	if res.Label() != "image/png" {
		t.Fatalf("label = %q", res.Label())
	}
}
