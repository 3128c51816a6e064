// Package logging constructs the slog loggers used across filehive.
//
// It exposes Attr aliases so callers avoid importing log/slog directly,
// supports console and json output formats with an optional log-file
// multi-writer, and provides a no-op logger for tests.
package logging
