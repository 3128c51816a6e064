package notelog

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultFilename is the audit note file name used when none is configured.
const DefaultFilename = "organization_note.txt"

// timeLayout matches the timestamp written at the head of each note line.
const timeLayout = "2006-01-02 15:04:05"

// Logger appends audit entries to per-folder note files.
type Logger struct {
	filename string
	now      func() time.Time
}

// NewLogger builds a note logger writing files with the given name.
func NewLogger(filename string) *Logger {
	if strings.TrimSpace(filename) == "" {
		filename = DefaultFilename
	}
	return &Logger{filename: filename, now: time.Now}
}

// Filename returns the note file name this logger writes.
func (l *Logger) Filename() string { return l.filename }

// Append records one copy in the folder's note file, creating the file on
// first use. The entry is a single newline-terminated line.
func (l *Logger) Append(folder, originalBase, destBase, typeLabel string) error {
	notePath := filepath.Join(folder, l.filename)
	f, err := os.OpenFile(notePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open note file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s - Moved %s as %s [%s]\n",
		l.now().Format(timeLayout), originalBase, destBase, typeLabel)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("append note entry: %w", err)
	}
	return f.Close()
}

// Match is one note line found for a searched file name.
type Match struct {
	Folder string
	Line   string
}

// Search walks the output root for note files and returns every line
// containing fileName as a substring, paired with its folder. A missing or
// never-populated output root yields an empty result, not an error.
// Unreadable note files are skipped.
func Search(outputRoot, noteFilename, fileName string) ([]Match, error) {
	if strings.TrimSpace(noteFilename) == "" {
		noteFilename = DefaultFilename
	}
	if strings.TrimSpace(fileName) == "" {
		return nil, nil
	}

	var matches []Match
	err := filepath.WalkDir(outputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == outputRoot {
				// Root missing entirely: nothing has been organized yet.
				return filepath.SkipAll
			}
			return nil
		}
		if d.IsDir() || d.Name() != noteFilename {
			return nil
		}
		lines, scanErr := scanNoteFile(path, fileName)
		if scanErr != nil {
			return nil
		}
		folder := filepath.Dir(path)
		for _, line := range lines {
			matches = append(matches, Match{Folder: folder, Line: line})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func scanNoteFile(path, fileName string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, fileName) {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return lines, scanner.Err()
}
