package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"filehive/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; existing databases with a different version are rejected.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

const timeFormat = time.RFC3339Nano

// Store manages run history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database in the log directory.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.LogDir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to reset)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// BeginRun inserts a run row at orchestration start.
func (s *Store) BeginRun(ctx context.Context, id string, startedAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (id, started_at) VALUES (?, ?)",
		id, startedAt.UTC().Format(timeFormat))
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// FinishRun records the terminal counts for a run.
func (s *Store) FinishRun(ctx context.Context, id string, finishedAt time.Time, processed, succeeded, failed int) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE runs SET finished_at = ?, processed = ?, succeeded = ?, failed = ? WHERE id = ?",
		finishedAt.UTC().Format(timeFormat), processed, succeeded, failed, id)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("finish run: run %s not found", id)
	}
	return nil
}

// RecordCopy inserts one successful copy for a run.
func (s *Store) RecordCopy(ctx context.Context, c Copy) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO copies (
            run_id, source_path, dest_path, folder,
            original_name, dest_name, type_label, copied_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.RunID, c.SourcePath, c.DestPath, c.Folder,
		c.OriginalName, c.DestName, c.TypeLabel,
		c.CopiedAt.UTC().Format(timeFormat))
	if err != nil {
		return fmt.Errorf("insert copy: %w", err)
	}
	return nil
}

// RecentRuns returns the newest runs first, up to limit.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, processed, succeeded, failed
         FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run      Run
			started  string
			finished sql.NullString
		)
		if err := rows.Scan(&run.ID, &started, &finished, &run.Processed, &run.Succeeded, &run.Failed); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if run.StartedAt, err = parseTime(started); err != nil {
			return nil, err
		}
		if finished.Valid {
			if run.FinishedAt, err = parseTime(finished.String); err != nil {
				return nil, err
			}
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// CopiesByName returns copies whose original or destination base name equals
// name exactly, newest first.
func (s *Store) CopiesByName(ctx context.Context, name string) ([]Copy, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, source_path, dest_path, folder,
                original_name, dest_name, type_label, copied_at
         FROM copies
         WHERE original_name = ? OR dest_name = ?
         ORDER BY copied_at DESC`, name, name)
	if err != nil {
		return nil, fmt.Errorf("query copies: %w", err)
	}
	defer rows.Close()
	return scanCopies(rows)
}

// CopiesForRun returns all copies recorded for a run in insertion order.
func (s *Store) CopiesForRun(ctx context.Context, runID string) ([]Copy, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, source_path, dest_path, folder,
                original_name, dest_name, type_label, copied_at
         FROM copies WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query run copies: %w", err)
	}
	defer rows.Close()
	return scanCopies(rows)
}

func scanCopies(rows *sql.Rows) ([]Copy, error) {
	var copies []Copy
	for rows.Next() {
		var (
			c      Copy
			copied string
		)
		if err := rows.Scan(&c.ID, &c.RunID, &c.SourcePath, &c.DestPath, &c.Folder,
			&c.OriginalName, &c.DestName, &c.TypeLabel, &copied); err != nil {
			return nil, fmt.Errorf("scan copy: %w", err)
		}
		var err error
		if c.CopiedAt, err = parseTime(copied); err != nil {
			return nil, err
		}
		copies = append(copies, c)
	}
	return copies, rows.Err()
}

func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(timeFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored timestamp %q: %w", value, err)
	}
	return t, nil
}
