package scan

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"filehive/internal/classify"
	"filehive/internal/logging"
)

// Enumerator expands input paths into an ordered list of regular files.
type Enumerator struct {
	outputRoot string
	logger     *slog.Logger
}

// NewEnumerator builds an enumerator that excludes the given output root's
// subtree from every expansion.
func NewEnumerator(outputRoot string, logger *slog.Logger) *Enumerator {
	return &Enumerator{
		outputRoot: outputRoot,
		logger:     logging.NewComponentLogger(logger, "scan"),
	}
}

// Enumerate walks the input paths in order. Files are included directly,
// directories recursively in traversal order. Duplicates are preserved when
// the same file is reachable through two inputs. Paths under the output root
// are skipped. Unreadable entries are logged and skipped.
func (e *Enumerator) Enumerate(paths []string) []string {
	var files []string
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			e.logger.Warn("skipping unresolvable input", logging.String("path", path), logging.Error(err))
			continue
		}
		info, err := os.Stat(abs)
		if err != nil {
			e.logger.Warn("skipping unreadable input", logging.String("path", abs), logging.Error(err))
			continue
		}
		if !info.IsDir() {
			if info.Mode().IsRegular() && !e.underOutputRoot(abs) {
				files = append(files, abs)
			}
			continue
		}

		walkErr := filepath.WalkDir(abs, func(entry string, d fs.DirEntry, err error) error {
			if err != nil {
				e.logger.Debug("skipping unreadable subtree", logging.String("path", entry), logging.Error(err))
				return nil
			}
			if e.underOutputRoot(entry) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() {
				files = append(files, entry)
			}
			return nil
		})
		if walkErr != nil {
			e.logger.Warn("walk aborted", logging.String("path", abs), logging.Error(walkErr))
		}
	}
	return files
}

func (e *Enumerator) underOutputRoot(path string) bool {
	root := strings.TrimSpace(e.outputRoot)
	if root == "" {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	if abs == root {
		return true
	}
	return strings.HasPrefix(abs, root+string(filepath.Separator))
}

// FindMarked recursively collects every file under the input paths whose
// base name, with the extension stripped, ends with the marker token.
// The output-root exclusion deliberately does not apply here: the guard
// inspects what the caller handed in, wherever it lives.
func FindMarked(paths []string, marker string) []string {
	if strings.TrimSpace(marker) == "" {
		return nil
	}
	var marked []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			if hasMarker(filepath.Base(path), marker) {
				marked = append(marked, path)
			}
			continue
		}
		_ = filepath.WalkDir(path, func(entry string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.Type().IsRegular() && hasMarker(d.Name(), marker) {
				marked = append(marked, entry)
			}
			return nil
		})
	}
	return marked
}

func hasMarker(base, marker string) bool {
	stem, _ := classify.SplitExt(base)
	return strings.HasSuffix(stem, marker)
}
